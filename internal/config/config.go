// SPDX-License-Identifier: EPL-2.0

// Package config loads pitchtrack settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audpitch"
	"github.com/ik5/audpitch/pitch"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Zap converts l to a zap level. Unknown levels map to info.
func (l LogLevel) Zap() zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Analysis controls how a stream is cut into blocks.
type Analysis struct {
	// BlockSize is the block length in samples.
	BlockSize int `yaml:"block_size"`
	// HopSize is the distance between block starts; 0 means BlockSize.
	HopSize int `yaml:"hop_size"`
	// SampleRate resamples the input first when non-zero.
	SampleRate int `yaml:"sample_rate"`
	// Workers bounds concurrent estimation; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Config is the root of the configuration file.
type Config struct {
	Pitch    pitch.Config `yaml:"pitch"`
	Analysis Analysis     `yaml:"analysis"`
	LogLevel LogLevel     `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pitch: pitch.DefaultConfig(),
		Analysis: Analysis{
			BlockSize: audpitch.DefaultBlockSize,
		},
		LogLevel: LogInfo,
	}
}

// Load reads the YAML configuration file at path and returns a validated
// Config. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Unknown keys are rejected. An empty document yields Default.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if err := cfg.Pitch.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pitch: %w", err))
	}

	a := cfg.Analysis
	if a.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("analysis.block_size must be positive, got %d", a.BlockSize))
	}
	if a.HopSize < 0 {
		errs = append(errs, fmt.Errorf("analysis.hop_size must not be negative, got %d", a.HopSize))
	}
	if a.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("analysis.sample_rate must not be negative, got %d", a.SampleRate))
	}
	if a.Workers < 0 {
		errs = append(errs, fmt.Errorf("analysis.workers must not be negative, got %d", a.Workers))
	}

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	return errors.Join(errs...)
}

// TrackOptions turns the analysis settings into tracker options. The
// logger is attached by the caller.
func (c *Config) TrackOptions(logger *zap.Logger) []audpitch.Option {
	return []audpitch.Option{
		audpitch.WithPitchConfig(c.Pitch),
		audpitch.WithBlockSize(c.Analysis.BlockSize),
		audpitch.WithHopSize(c.Analysis.HopSize),
		audpitch.WithSampleRate(c.Analysis.SampleRate),
		audpitch.WithWorkers(c.Analysis.Workers),
		audpitch.WithLogger(logger),
	}
}
