// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/beepwav/audio"
)

// SampleCount returns floor(durationMs * sampleRate / 1000), or 0 when either
// argument is not positive.
func SampleCount(durationMs, sampleRate int) int {
	if durationMs <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(int64(durationMs) * int64(sampleRate) / 1000)
}

// Sine computes a tone of frequency Hz lasting durationMs milliseconds.
// Sample x is volume * sin(2π * frequency * x / sampleRate). Zero and
// negative frequencies are allowed and give silence or a phase inverted tone.
func Sine(durationMs, sampleRate int, frequency, volume float64) audio.Samples {
	n := SampleCount(durationMs, sampleRate)
	samples := make(audio.Samples, n)

	step := 2 * math.Pi * frequency / float64(sampleRate)
	for x := range samples {
		samples[x] = volume * math.Sin(step*float64(x))
	}

	return samples
}
