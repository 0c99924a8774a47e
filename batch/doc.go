// SPDX-License-Identifier: EPL-2.0

// Package batch writes numbered sets of identical beep files.
//
//	cfg := batch.DefaultConfig() // output/a01.wav ... output/a09.wav
//	cfg.Prefix = "Experiment_42_"
//	paths, err := batch.New(logger).Generate(cfg)
//
// Generate creates the output directory when it is missing, but only that
// one directory: a missing parent makes it fail.
package batch
