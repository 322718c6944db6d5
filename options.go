// SPDX-License-Identifier: EPL-2.0

package audpitch

import (
	"runtime"

	"github.com/ik5/audpitch/pitch"
	"go.uber.org/zap"
)

// DefaultBlockSize is the number of samples per analysis block.
const DefaultBlockSize = 4096

// Option configures Track and TrackBlocks.
type Option func(*options)

type options struct {
	pitch      pitch.Config
	blockSize  int
	hopSize    int
	sampleRate int
	workers    int
	logger     *zap.Logger
}

func defaultOptions() options {
	return options{
		pitch:     pitch.DefaultConfig(),
		blockSize: DefaultBlockSize,
		workers:   runtime.GOMAXPROCS(0),
		logger:    zap.NewNop(),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPitchConfig sets the estimator configuration.
func WithPitchConfig(c pitch.Config) Option {
	return func(o *options) { o.pitch = c }
}

// WithBlockSize sets the block length in samples.
func WithBlockSize(n int) Option {
	return func(o *options) { o.blockSize = n }
}

// WithHopSize sets the distance between block starts. 0 means no overlap.
func WithHopSize(n int) Option {
	return func(o *options) { o.hopSize = n }
}

// WithSampleRate resamples the source to rate Hz before framing. 0 keeps
// the source rate; a negative rate makes Track fail.
func WithSampleRate(rate int) Option {
	return func(o *options) { o.sampleRate = rate }
}

// WithWorkers bounds how many blocks are estimated at once. Values below
// 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithLogger sets the logger. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
