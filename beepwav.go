// SPDX-License-Identifier: EPL-2.0

package beepwav

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/ik5/beepwav/batch"
)

// Volume and sample rate shared by every Beep.
const (
	Volume     = 1.0
	SampleRate = 44100
)

// Beep describes one named group of identical beep files.
type Beep struct {
	Prefix     string
	DurationMs int
	Frequency  float64
	Count      int
}

// Config expands b into a batch config writing into dir with padSpec.
func (b Beep) Config(dir, padSpec string) batch.Config {
	return batch.Config{
		Dir:        dir,
		Prefix:     b.Prefix,
		Count:      b.Count,
		PadSpec:    padSpec,
		DurationMs: b.DurationMs,
		SampleRate: SampleRate,
		Frequency:  b.Frequency,
		Volume:     Volume,
	}
}

// Table maps an entry key to its Beep. Entries are independent of each
// other; two entries sharing a Prefix overwrite each other's files.
type Table map[string]Beep

// DefaultTable returns the stock beep set: four groups of 60 short beeps,
// four groups of 66 short beeps and four pairs of long beeps, climbing
// through 222-999 Hz. Note that "pd" shares the "pa" prefix.
func DefaultTable() Table {
	return Table{
		"a":  {Prefix: "a", DurationMs: 250, Frequency: 222, Count: 60},
		"b":  {Prefix: "b", DurationMs: 250, Frequency: 333, Count: 60},
		"c":  {Prefix: "c", DurationMs: 250, Frequency: 444, Count: 60},
		"d":  {Prefix: "d", DurationMs: 250, Frequency: 555, Count: 60},
		"fa": {Prefix: "fa", DurationMs: 250, Frequency: 666, Count: 66},
		"fb": {Prefix: "fb", DurationMs: 250, Frequency: 777, Count: 66},
		"fc": {Prefix: "fc", DurationMs: 250, Frequency: 888, Count: 66},
		"fd": {Prefix: "fd", DurationMs: 250, Frequency: 999, Count: 66},
		"pa": {Prefix: "pa", DurationMs: 500, Frequency: 222, Count: 2},
		"pb": {Prefix: "pb", DurationMs: 500, Frequency: 333, Count: 2},
		"pc": {Prefix: "pc", DurationMs: 500, Frequency: 444, Count: 2},
		"pd": {Prefix: "pa", DurationMs: 500, Frequency: 555, Count: 2},
	}
}

// GenerateAll writes every entry of table into batch.DefaultDir with
// two-digit indexes. The first failing entry stops the run.
//
// Keys are visited in sorted order to keep logs stable; the files produced
// do not depend on it unless prefixes collide.
func GenerateAll(table Table, logger *zap.Logger) error {
	gen := batch.New(logger)
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, key := range slices.Sorted(maps.Keys(table)) {
		beep := table[key]
		logger.Info("generating",
			zap.String("key", key),
			zap.String("prefix", beep.Prefix),
			zap.Int("count", beep.Count),
		)

		if _, err := gen.Generate(beep.Config(batch.DefaultDir, batch.DefaultPadSpec)); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
	}

	return nil
}
