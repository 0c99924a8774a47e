// SPDX-License-Identifier: EPL-2.0

// Package synth generates sine tones as amplitude sequences.
//
//	// 300ms of A440 at 44.1kHz, full volume
//	tone := synth.Sine(300, 44100, 440, 1.0)
//	// len(tone) == 13230
//
// Sine is pure: identical arguments always give identical samples, so one
// tone can be written to any number of files.
package synth
