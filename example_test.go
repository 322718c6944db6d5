// SPDX-License-Identifier: EPL-2.0

package audpitch_test

import (
	"context"
	"fmt"

	"github.com/ik5/audpitch"
	"github.com/ik5/audpitch/internal/audiotest"
	"github.com/ik5/audpitch/pitch"
)

// Example tracks a source that plays 200 Hz, pauses, then drops an octave.
func Example() {
	src := audiotest.NewSegmentedSource(8000, 4096, 0.5, 200, 0, 100)

	frames, err := audpitch.Track(context.Background(), src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, f := range frames {
		if !f.Result.Voiced() {
			fmt.Printf("%v\t-\t%v\n", f.Start, f.Result.Reason)
			continue
		}

		note, _ := pitch.NoteName(f.Frequency)
		fmt.Printf("%v\t%.0f Hz\t%s\n", f.Start, f.Frequency, note)
	}

	// Output:
	// 0s	200 Hz	G3
	// 512ms	-	silent
	// 1.024s	100 Hz	G2
}

func ExampleSummary() {
	blocks := [][]float64{
		audiotest.Sine(100, 8000, 1000, 0.5),
		audiotest.Sine(200, 8000, 1000, 0.5),
		make([]float64, 1000),
	}

	frames, _ := audpitch.TrackBlocks(context.Background(), blocks, 8000)
	s := audpitch.Summary(frames)

	fmt.Printf("%d/%d voiced, %.0f-%.0f Hz\n", s.Voiced, s.Frames, s.Min, s.Max)

	// Output:
	// 2/3 voiced, 100-200 Hz
}
