// SPDX-License-Identifier: EPL-2.0

// Package beepwav generates batches of short sine-wave beeps as mono 16-bit
// PCM WAV files.
//
// # Quick Start
//
// The simplest way to produce the stock beep set is GenerateAll:
//
//	logger, _ := zap.NewProduction()
//	err := beepwav.GenerateAll(beepwav.DefaultTable(), logger)
//	// ./output/a01.wav ... ./output/pc02.wav
//
// Each Table entry becomes one batch: Count identical files named Prefix
// followed by a two-digit index starting at 01.
//
// # Single Batches
//
// For more control use the batch subpackage directly:
//
//	cfg := batch.DefaultConfig()
//	cfg.Prefix = "Experiment_42_"
//	cfg.PadSpec = "%03d"
//	paths, err := batch.New(logger).Generate(cfg)
//
// # Building Blocks
//
//   - synth: sine tone synthesis into audio.Samples
//   - formats/wav: writing and reading mono PCM16 WAV files
//   - batch: output directory handling, file naming and the write loop
//
// # Failure Behavior
//
// Nothing is retried. The first failing write stops the current batch and
// GenerateAll; files already written stay on disk. Only the last element of
// the output directory is created, so a missing parent is an error.
package beepwav
