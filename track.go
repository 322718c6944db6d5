// SPDX-License-Identifier: EPL-2.0

package audpitch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ik5/audpitch/audio"
	"github.com/ik5/audpitch/pitch"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Frame is the estimate for one block of a track.
type Frame struct {
	// Index of the block, counting from 0.
	Index int
	// Start is the offset of the block's first sample in the stream.
	Start time.Duration
	// Frequency in Hz, or pitch.NoPitch.
	Frequency float64
	Result    pitch.Result
}

// Track frames src and estimates the pitch of every block. The source is
// not closed.
func Track(ctx context.Context, src audio.Source, opts ...Option) ([]Frame, error) {
	o := newOptions(opts)

	if err := o.pitch.Validate(); err != nil {
		return nil, err
	}

	var in audio.Source = src
	if o.sampleRate != 0 && o.sampleRate != src.SampleRate() {
		r, err := audio.NewResampler(src, o.sampleRate)
		if err != nil {
			return nil, fmt.Errorf("track: %w", err)
		}
		in = r

		o.logger.Debug("resampling source",
			zap.Int("from", src.SampleRate()),
			zap.Int("to", o.sampleRate),
		)
	}

	framer, err := audio.NewFramer(in, o.blockSize, o.hopSize)
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}

	var blocks [][]float64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		block, err := framer.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("track: %w", err)
		}

		blocks = append(blocks, block)
	}

	return trackBlocks(ctx, blocks, framer.SampleRate(), framer.Hop(), o)
}

// TrackBlocks estimates pre-cut blocks. Frame start times assume blocks
// follow each other without overlap unless WithHopSize says otherwise.
func TrackBlocks(ctx context.Context, blocks [][]float64, sampleRate int, opts ...Option) ([]Frame, error) {
	o := newOptions(opts)

	if err := o.pitch.Validate(); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("track: %w", pitch.ErrInvalidSampleRate)
	}

	hop := o.hopSize
	if hop <= 0 && len(blocks) > 0 {
		hop = len(blocks[0])
	}

	return trackBlocks(ctx, blocks, sampleRate, hop, o)
}

func trackBlocks(ctx context.Context, blocks [][]float64, sampleRate, hop int, o options) ([]Frame, error) {
	frames := make([]Frame, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, block := range blocks {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := o.pitch.Analyze(block, sampleRate)
			if err != nil {
				return fmt.Errorf("track: block %d: %w", i, err)
			}

			frames[i] = Frame{
				Index:     i,
				Start:     offset(i*hop, sampleRate),
				Frequency: res.Frequency,
				Result:    res,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, f := range frames {
		if !f.Result.Voiced() {
			o.logger.Debug("no pitch",
				zap.Int("block", f.Index),
				zap.Duration("start", f.Start),
				zap.Stringer("reason", f.Result.Reason),
				zap.Float64("rms", f.Result.RMS),
			)
		}
	}

	stats := Summary(frames)
	o.logger.Info("track complete",
		zap.Int("frames", stats.Frames),
		zap.Int("voiced", stats.Voiced),
		zap.Float64("median_hz", stats.Median),
		zap.Int("sample_rate", sampleRate),
	)

	return frames, nil
}

// offset converts a sample index to a duration at rate Hz.
func offset(sample, rate int) time.Duration {
	return time.Duration(int64(sample) * int64(time.Second) / int64(rate))
}
