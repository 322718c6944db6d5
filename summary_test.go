// SPDX-License-Identifier: EPL-2.0

package audpitch

import (
	"testing"

	"github.com/ik5/audpitch/pitch"
)

func voiced(hz float64) Frame {
	return Frame{Frequency: hz, Result: pitch.Result{Frequency: hz, Reason: pitch.Voiced}}
}

func unvoiced(r pitch.Reason) Frame {
	return Frame{Frequency: pitch.NoPitch, Result: pitch.Result{Frequency: pitch.NoPitch, Reason: r}}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames []Frame
		want   Stats
	}{
		{
			name: "empty",
			want: Stats{Mean: -1, Median: -1, Min: -1, Max: -1},
		},
		{
			name:   "all unvoiced",
			frames: []Frame{unvoiced(pitch.Silent), unvoiced(pitch.Aperiodic)},
			want:   Stats{Frames: 2, Mean: -1, Median: -1, Min: -1, Max: -1},
		},
		{
			name: "mixed",
			frames: []Frame{
				voiced(300), unvoiced(pitch.Silent), voiced(100), voiced(200), unvoiced(pitch.DegenerateRange),
			},
			want: Stats{Frames: 5, Voiced: 3, Mean: 200, Median: 200, Min: 100, Max: 300},
		},
		{
			name:   "even count median is lower middle",
			frames: []Frame{voiced(110), voiced(440), voiced(220), voiced(330)},
			want:   Stats{Frames: 4, Voiced: 4, Mean: 275, Median: 220, Min: 110, Max: 440},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Summary(tt.frames); got != tt.want {
				t.Errorf("Summary() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
