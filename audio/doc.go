// SPDX-License-Identifier: EPL-2.0

// Package audio holds the amplitude sequence type shared by the synthesizer
// and the WAV writer.
//
// # Sample Format
//
// Amplitudes are float64 values in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Samples are always mono. When written to disk each value is quantized to a
// signed 16-bit integer with PCM16:
//
//	s := audio.Samples{0, 0.5, -0.5}
//	pcm := s.PCM16() // []int{0, 16384, -16384}
//
// Values outside [-1, 1] are clamped during quantization instead of wrapping
// around.
package audio
