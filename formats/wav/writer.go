// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"go.uber.org/multierr"

	"github.com/ik5/beepwav/audio"
	"github.com/ik5/beepwav/utils"
)

// PCM format tag in the fmt chunk.
const pcmFormat = 1

// Frames quantized per encoder write.
const chunkSize = 8192

// Encode writes samples as a mono 16-bit PCM WAV at sampleRate. The header
// sizes are patched by seeking back once all samples are written.
func Encode(w io.WriteSeeker, samples audio.Samples, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}

	enc := gowav.NewEncoder(w, sampleRate, audio.BitDepth, audio.Channels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: audio.Channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, 0, min(len(samples), chunkSize)),
		SourceBitDepth: audio.BitDepth,
	}

	// An empty write still emits the header and an empty data chunk.
	if len(samples) == 0 {
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))

		buf.Data = buf.Data[:0]
		for _, v := range samples[i:end] {
			buf.Data = append(buf.Data, int(utils.Float64ToInt16(v)))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing header: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes samples to it as a mono
// 16-bit PCM WAV. The parent directory must already exist.
func WriteFile(path string, samples audio.Samples, sampleRate int) (err error) {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if err := Encode(f, samples, sampleRate); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}
