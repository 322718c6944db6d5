// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audpitch/formats/wav"
	"github.com/ik5/audpitch/internal/audiotest"
)

// Example_roundTrip writes a tone and reads it back.
func Example_roundTrip() {
	f, err := os.CreateTemp("", "tone-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := wav.WriteMono(f, 16000, audiotest.Sine(220, 16000, 1600, 0.5)); err != nil {
		fmt.Println(err)
		return
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fmt.Println(err)
		return
	}

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println(err)
		return
	}

	total := 0
	buf := make([]float32, 512)
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err != nil {
			break
		}
	}

	fmt.Printf("%d Hz, %d channel(s), %d samples\n", src.SampleRate(), src.Channels(), total)
	// Output: 16000 Hz, 1 channel(s), 1600 samples
}
