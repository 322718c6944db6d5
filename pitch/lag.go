// SPDX-License-Identifier: EPL-2.0

package pitch

import "math"

// LagRange is an inclusive span of autocorrelation offsets in samples.
// Min corresponds to MaxFreq and Max to MinFreq.
type LagRange struct {
	Min int
	Max int
}

// maxLag caps derived lags so a tiny band edge cannot overflow int.
const maxLag = math.MaxInt32

// Lags derives the lag range for sampleRate from the configured band:
// Min = floor(rate/MaxFreq), Max = floor(rate/MinFreq), both capped at
// math.MaxInt32.
func (c Config) Lags(sampleRate int) LagRange {
	rate := float64(sampleRate)

	return LagRange{
		Min: toLag(rate / c.MaxFreq),
		Max: toLag(rate / c.MinFreq),
	}
}

func toLag(period float64) int {
	return int(math.Floor(min(period, maxLag)))
}

// Clamp narrows r to the lags that can be searched in a block of n samples.
// Lag 0 has no period and lags at or past n have no overlapping samples.
func (r LagRange) Clamp(n int) LagRange {
	out := r
	if out.Min < 1 {
		out.Min = 1
	}
	if out.Max > n-1 {
		out.Max = n - 1
	}

	return out
}

// Empty reports whether no lag lies in r.
func (r LagRange) Empty() bool { return r.Min > r.Max }

// Len is the number of lags in r.
func (r LagRange) Len() int {
	if r.Empty() {
		return 0
	}

	return r.Max - r.Min + 1
}
