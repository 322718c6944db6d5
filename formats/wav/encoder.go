// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteMono writes samples in [-1, 1] as a mono 16-bit PCM WAV at
// sampleRate. Values outside the range are clipped.
func WriteMono(w io.WriteSeeker, sampleRate int, samples []float64) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(toInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize header: %w", err)
	}

	return nil
}

func toInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	// Clamp and scale; 32767 keeps +1.0 from overflowing.
	x = max(-1, min(1, x))

	return int16(math.Round(x * 32767))
}
