// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/beepwav/audio"
	"github.com/ik5/beepwav/utils"
)

// Clip is a fully decoded PCM16 WAV file.
type Clip struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// Data holds interleaved samples as stored in the file.
	Data []int
}

// Frames returns the number of frames in the clip.
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Data) / c.Channels
}

// Samples converts Data back to normalized amplitudes.
func (c *Clip) Samples() audio.Samples {
	out := make(audio.Samples, len(c.Data))
	for i, v := range c.Data {
		out[i] = utils.Int16ToFloat64(int16(v))
	}
	return out
}

// Decode reads a complete PCM16 WAV stream.
func Decode(r io.ReadSeeker) (*Clip, error) {
	dec := gowav.NewDecoder(r)
	dec.ReadInfo()

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat || dec.BitDepth != audio.BitDepth {
		return nil, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if buf == nil {
		return nil, ErrUnsupportedWavChunks
	}

	return &Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Data:       buf.Data,
	}, nil
}

// ReadFile opens and decodes the WAV file at path.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	clip, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return clip, nil
}
