// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads mono 16-bit PCM WAV files.
//
// Encoding and decoding are delegated to github.com/go-audio/wav; this
// package owns the amplitude quantization and the file lifecycle.
//
// # Writing WAV Files
//
// Use WriteFile to store an amplitude sequence:
//
//	tone := synth.Sine(300, 44100, 440, 1.0)
//	err := wav.WriteFile("output/a01.wav", tone, 44100)
//
// Each amplitude a is stored as round(a * 32767). Amplitudes outside
// [-1, 1] are clamped. The parent directory must exist; WriteFile never
// creates directories. The file is closed on every exit path and a failed
// close is reported as an error.
//
// Encode does the same against any io.WriteSeeker. The header sizes are
// patched at the end, which is why a plain io.Writer is not enough.
//
// # Reading WAV Files
//
// ReadFile and Decode return a Clip holding the raw samples:
//
//	clip, err := wav.ReadFile("output/a01.wav")
//	if errors.Is(err, wav.ErrOnlyPCM16bitSupported) {
//	    // 8-bit, 24-bit or float file
//	}
//
// # Error Handling
//
//   - ErrNotWavFile: The input is not a RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: Only 16-bit integer PCM is supported
//   - ErrUnsupportedWavChunks: The data chunk could not be read
//   - audio.ErrInvalidSampleRate: Writing with a non-positive sample rate
//
// # File Format
//
// Files written by this package consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): PCM, 1 channel, 16 bits, sample rate
//   - data chunk: 8 byte header followed by little-endian samples
package wav
