// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"math"
	"strings"
)

// Defaults used by DefaultConfig.
const (
	DefaultDir        = "output"
	DefaultPrefix     = "a"
	DefaultCount      = 9
	DefaultPadSpec    = "%02d"
	DefaultDurationMs = 300
	DefaultSampleRate = 44100
	DefaultFrequency  = 440.0
	DefaultVolume     = 1.0
)

// Extension appended to every generated file name.
const Extension = ".wav"

// Config describes one batch of identical beep files.
type Config struct {
	// Dir is the output directory. Relative paths are resolved against the
	// working directory. Only the last path element is ever created.
	Dir string
	// Prefix starts every file name, e.g. "Experiment_42_".
	Prefix string
	// Count is how many files to write, numbered from 1.
	Count int
	// PadSpec formats the file index, e.g. "%03d" gives 001 ... 999.
	PadSpec string

	DurationMs int
	SampleRate int
	Frequency  float64
	// Volume scales the amplitude, 1.0 is full scale.
	Volume float64
}

// DefaultConfig returns nine 300ms A440 beeps named output/a01.wav to
// output/a09.wav.
func DefaultConfig() Config {
	return Config{
		Dir:        DefaultDir,
		Prefix:     DefaultPrefix,
		Count:      DefaultCount,
		PadSpec:    DefaultPadSpec,
		DurationMs: DefaultDurationMs,
		SampleRate: DefaultSampleRate,
		Frequency:  DefaultFrequency,
		Volume:     DefaultVolume,
	}
}

// Validate reports the first field that cannot produce a batch.
func (c Config) Validate() error {
	switch {
	case c.Dir == "":
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	case c.Count < 0:
		return fmt.Errorf("%w: negative file count %d", ErrInvalidConfig, c.Count)
	case c.DurationMs < 0:
		return fmt.Errorf("%w: negative duration %dms", ErrInvalidConfig, c.DurationMs)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidConfig, c.SampleRate)
	case math.IsNaN(c.Volume) || c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalidConfig, c.Volume)
	}

	// fmt reports bad verbs and argument mismatches inline as "%!".
	if strings.Contains(fmt.Sprintf(c.PadSpec, 1), "%!") {
		return fmt.Errorf("%w: pad spec %q does not format one integer", ErrInvalidConfig, c.PadSpec)
	}

	return nil
}

// FileName returns the name of the i-th file, without directory.
func (c Config) FileName(i int) string {
	return c.Prefix + fmt.Sprintf(c.PadSpec, i) + Extension
}
