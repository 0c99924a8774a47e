// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ik5/beepwav/formats/wav"
	"github.com/ik5/beepwav/synth"
)

// Generator writes batches of beep files.
type Generator struct {
	logger *zap.Logger
}

// New returns a Generator logging to logger. A nil logger discards output.
func New(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{logger: logger}
}

// Generate creates cfg.Dir when missing and writes cfg.Count copies of the
// same tone into it, named cfg.FileName(1) to cfg.FileName(cfg.Count).
//
// The tone is synthesized once. The first failed write stops the batch;
// files written before it are left on disk and their paths are returned
// together with the error.
func (g *Generator) Generate(cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dir, err := g.ensureDir(cfg.Dir)
	if err != nil {
		return nil, err
	}

	tone := synth.Sine(cfg.DurationMs, cfg.SampleRate, cfg.Frequency, cfg.Volume)

	logger := g.logger.With(
		zap.String("dir", dir),
		zap.String("prefix", cfg.Prefix),
		zap.Float64("frequency", cfg.Frequency),
	)
	logger.Debug("tone synthesized", zap.Int("frames", tone.Frames()))

	paths := make([]string, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		path := filepath.Join(dir, cfg.FileName(i))

		if err := wav.WriteFile(path, tone, cfg.SampleRate); err != nil {
			logger.Error("write failed", zap.String("path", path), zap.Error(err))
			return paths, fmt.Errorf("file %d of %d: %w", i, cfg.Count, err)
		}

		logger.Info("created", zap.String("path", path))
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteTone writes a single file at path using the synthesis settings of
// cfg. Dir, Prefix, Count and PadSpec are ignored.
func (g *Generator) WriteTone(path string, cfg Config) error {
	if cfg.DurationMs < 0 {
		return fmt.Errorf("%w: negative duration %dms", ErrInvalidConfig, cfg.DurationMs)
	}

	tone := synth.Sine(cfg.DurationMs, cfg.SampleRate, cfg.Frequency, cfg.Volume)
	if err := wav.WriteFile(path, tone, cfg.SampleRate); err != nil {
		return err
	}

	g.logger.Info("created",
		zap.String("path", path),
		zap.Int("frames", tone.Frames()),
	)

	return nil
}

// ensureDir resolves dir against the working directory and creates it when
// it does not exist. Parents are never created.
func (g *Generator) ensureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", dir, err)
		}
		dir = filepath.Join(cwd, dir)
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("%s: %w", dir, ErrNotDirectory)
		}
		return dir, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("checking %s: %w", dir, err)
	}

	g.logger.Info("creating directory", zap.String("dir", dir))
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	return dir, nil
}
