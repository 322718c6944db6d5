// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMinFreq is the lower bound of the searched band in Hz.
	DefaultMinFreq = 85.0
	// DefaultMaxFreq is the upper bound of the searched band in Hz.
	DefaultMaxFreq = 440.0
	// DefaultSilenceThreshold is the RMS floor below which a block is treated as silence.
	DefaultSilenceThreshold = 0.01
	// DefaultCorrelationThreshold is the minimum peak correlation accepted as a pitch.
	DefaultCorrelationThreshold = 0.01
)

// Config holds the tunables of the estimator.
//
// The default thresholds are empirical. They are kept for compatibility
// with existing callers, not because they were shown to be optimal.
type Config struct {
	// MinFreq is the lowest fundamental frequency searched, in Hz.
	MinFreq float64 `yaml:"min_freq" json:"min_freq"`
	// MaxFreq is the highest fundamental frequency searched, in Hz.
	MaxFreq float64 `yaml:"max_freq" json:"max_freq"`
	// SilenceThreshold is the RMS amplitude below which a block is rejected.
	SilenceThreshold float64 `yaml:"silence_threshold" json:"silence_threshold"`
	// CorrelationThreshold is the minimum best-lag correlation that is accepted.
	CorrelationThreshold float64 `yaml:"correlation_threshold" json:"correlation_threshold"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the 85–440 Hz voice band with 0.01 thresholds.
func DefaultConfig() Config {
	return Config{
		MinFreq:              DefaultMinFreq,
		MaxFreq:              DefaultMaxFreq,
		SilenceThreshold:     DefaultSilenceThreshold,
		CorrelationThreshold: DefaultCorrelationThreshold,
	}
}

// WithMinFreq sets the lower bound of the search band.
func WithMinFreq(hz float64) Option {
	return func(cfg *Config) {
		cfg.MinFreq = hz
	}
}

// WithMaxFreq sets the upper bound of the search band.
func WithMaxFreq(hz float64) Option {
	return func(cfg *Config) {
		cfg.MaxFreq = hz
	}
}

// WithSilenceThreshold sets the RMS gate.
func WithSilenceThreshold(rms float64) Option {
	return func(cfg *Config) {
		cfg.SilenceThreshold = rms
	}
}

// WithCorrelationThreshold sets the acceptance gate for the best lag.
func WithCorrelationThreshold(c float64) Option {
	return func(cfg *Config) {
		cfg.CorrelationThreshold = c
	}
}

// NewConfig applies opts on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every problem with c, joined into one error that
// matches ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	if !isFinite(c.MinFreq) || c.MinFreq <= 0 {
		errs = append(errs, fmt.Errorf("min_freq %v must be a positive number", c.MinFreq))
	}

	if !isFinite(c.MaxFreq) || c.MaxFreq <= 0 {
		errs = append(errs, fmt.Errorf("max_freq %v must be a positive number", c.MaxFreq))
	}

	if c.MinFreq >= c.MaxFreq {
		errs = append(errs, fmt.Errorf("min_freq %v must be below max_freq %v", c.MinFreq, c.MaxFreq))
	}

	if !isFinite(c.SilenceThreshold) || c.SilenceThreshold < 0 {
		errs = append(errs, fmt.Errorf("silence_threshold %v must be a non-negative number", c.SilenceThreshold))
	}

	if !isFinite(c.CorrelationThreshold) || c.CorrelationThreshold < 0 {
		errs = append(errs, fmt.Errorf("correlation_threshold %v must be a non-negative number", c.CorrelationThreshold))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
