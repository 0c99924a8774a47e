// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"time"

	"github.com/ik5/beepwav/utils"
)

// Mono PCM16 is the only layout produced by this module.
const (
	Channels = 1
	BitDepth = 16
)

// Samples is a mono amplitude sequence. Each value is expected in [-1, 1].
type Samples []float64

// Frames returns the number of frames. For mono audio it equals len(s).
func (s Samples) Frames() int { return len(s) }

// Duration is the playing time of s at sampleRate.
func (s Samples) Duration(sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(len(s)) * time.Second / time.Duration(sampleRate)
}

// Peak returns the largest absolute amplitude in s.
func (s Samples) Peak() float64 {
	var peak float64
	for _, v := range s {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// PCM16 quantizes s into 16-bit PCM values, widened to int so the result
// can back a go-audio IntBuffer directly.
func (s Samples) PCM16() []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(utils.Float64ToInt16(v))
	}
	return out
}

// Equal reports whether s and other hold the same values.
func (s Samples) Equal(other Samples) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
