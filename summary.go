// SPDX-License-Identifier: EPL-2.0

package audpitch

import (
	"slices"

	"github.com/ik5/audpitch/pitch"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises a track. Frequency fields cover voiced frames only and
// are pitch.NoPitch when there are none.
type Stats struct {
	Frames int     `json:"frames"`
	Voiced int     `json:"voiced"`
	Mean   float64 `json:"mean_hz"`
	Median float64 `json:"median_hz"`
	Min    float64 `json:"min_hz"`
	Max    float64 `json:"max_hz"`
}

// Summary computes Stats over frames.
func Summary(frames []Frame) Stats {
	s := Stats{
		Frames: len(frames),
		Mean:   pitch.NoPitch,
		Median: pitch.NoPitch,
		Min:    pitch.NoPitch,
		Max:    pitch.NoPitch,
	}

	var hz []float64
	for _, f := range frames {
		if f.Result.Voiced() {
			hz = append(hz, f.Frequency)
		}
	}

	s.Voiced = len(hz)
	if s.Voiced == 0 {
		return s
	}

	slices.Sort(hz)

	s.Mean = stat.Mean(hz, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, hz, nil)
	s.Min = floats.Min(hz)
	s.Max = floats.Max(hz)

	return s
}
