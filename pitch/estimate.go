// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NoPitch is returned in place of a frequency when a block holds no
// detectable pitch.
const NoPitch = -1.0

// Reason tells why Analyze did or did not find a pitch.
type Reason int

const (
	// Voiced means a pitch was found.
	Voiced Reason = iota
	// Silent means the block RMS was below the silence threshold.
	Silent
	// Aperiodic means the best correlation was below the correlation threshold.
	Aperiodic
	// DegenerateRange means no usable lag existed for the block length and rate.
	DegenerateRange
)

func (r Reason) String() string {
	switch r {
	case Voiced:
		return "voiced"
	case Silent:
		return "silent"
	case Aperiodic:
		return "aperiodic"
	case DegenerateRange:
		return "degenerate range"
	default:
		return "unknown"
	}
}

// Result is the full outcome of one estimation.
type Result struct {
	// Frequency is the estimated fundamental in Hz, or NoPitch.
	Frequency float64
	// Lag is the winning autocorrelation offset in samples, 0 when none won.
	Lag int
	// Correlation is the unnormalized autocorrelation at Lag.
	Correlation float64
	// RMS of the input block.
	RMS float64
	Reason Reason
}

// Voiced reports whether r carries a frequency.
func (r Result) Voiced() bool { return r.Reason == Voiced }

// Estimate runs the default configuration over samples.
func Estimate(samples []float64, sampleRate int) (float64, error) {
	return DefaultConfig().Estimate(samples, sampleRate)
}

// EstimateFloat32 is Estimate for float32 capture buffers.
func EstimateFloat32(samples []float32, sampleRate int) (float64, error) {
	block := make([]float64, len(samples))
	for i, s := range samples {
		block[i] = float64(s)
	}

	return Estimate(block, sampleRate)
}

// Estimate returns the fundamental frequency of samples in Hz, or NoPitch
// when the block is too quiet, not periodic enough, or too short for the
// configured band. An error is returned only for an empty block, a
// non-positive sample rate or an invalid configuration.
func (c Config) Estimate(samples []float64, sampleRate int) (float64, error) {
	res, err := c.Analyze(samples, sampleRate)
	if err != nil {
		return NoPitch, err
	}

	return res.Frequency, nil
}

// Analyze is Estimate with the intermediate values and the reason kept.
//
// The block is gated on RMS, normalized by it, and then the lag in
// [floor(rate/MaxFreq), floor(rate/MinFreq)] with the largest
// autocorrelation sum_i n[i]*n[i+lag] is taken as the period. Lags are
// scanned in increasing order with a strict comparison, so the shortest of
// equally good lags wins and only positive correlations qualify.
//
// Analyze does not retain samples and is safe for concurrent use.
func (c Config) Analyze(samples []float64, sampleRate int) (Result, error) {
	res := Result{Frequency: NoPitch}

	if len(samples) == 0 {
		return res, ErrEmptyBlock
	}
	if sampleRate <= 0 {
		return res, ErrInvalidSampleRate
	}
	if err := c.Validate(); err != nil {
		return res, err
	}

	rms := RMS(samples)
	res.RMS = rms

	// Written as a negated >= so a NaN RMS is rejected as well.
	if !(rms >= c.SilenceThreshold) {
		res.Reason = Silent
		return res, nil
	}

	lags := c.Lags(sampleRate).Clamp(len(samples))
	if lags.Empty() {
		res.Reason = DegenerateRange
		return res, nil
	}

	normalized := make([]float64, len(samples))
	for i, s := range samples {
		normalized[i] = s / rms
	}

	n := len(normalized)
	bestLag := 0
	bestCorrelation := 0.0

	for lag := lags.Min; lag <= lags.Max; lag++ {
		correlation := floats.Dot(normalized[:n-lag], normalized[lag:])
		if correlation > bestCorrelation {
			bestCorrelation = correlation
			bestLag = lag
		}
	}

	res.Lag = bestLag
	res.Correlation = bestCorrelation

	if bestLag == 0 || bestCorrelation < c.CorrelationThreshold {
		res.Reason = Aperiodic
		return res, nil
	}

	freq := float64(sampleRate) / float64(bestLag)
	if !(freq > 0) || math.IsInf(freq, 0) {
		res.Reason = DegenerateRange
		return res, nil
	}

	res.Frequency = freq
	res.Reason = Voiced

	return res, nil
}

// RMS returns the root-mean-square amplitude of samples, 0 for an empty slice.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}
