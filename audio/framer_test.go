// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audpitch/internal/audiotest"
)

// rampSource yields the frame index as the sample value on every channel.
func rampSource(channels, frames int) *audiotest.MockSource {
	return audiotest.NewMockSource(8000, channels, frames, func(frame int, _ int) float32 {
		return float32(frame)
	})
}

func TestFramer_BlockStarts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		frames     int
		size       int
		hop        int
		wantStarts []int
	}{
		{name: "hop defaults to size", frames: 10000, size: 4096, hop: 0, wantStarts: []int{0, 4096}},
		{name: "overlapping", frames: 10000, size: 4096, hop: 2048, wantStarts: []int{0, 2048, 4096}},
		{name: "skipping across chunks", frames: 12000, size: 1000, hop: 5000, wantStarts: []int{0, 5000, 10000}},
		{name: "exact fit", frames: 3000, size: 1000, hop: 1000, wantStarts: []int{0, 1000, 2000}},
		{name: "shorter than one block", frames: 500, size: 1000, hop: 0, wantStarts: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			framer, err := NewFramer(rampSource(1, tt.frames), tt.size, tt.hop)
			if err != nil {
				t.Fatalf("NewFramer() error = %v", err)
			}

			blocks, err := framer.All()
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}

			if len(blocks) != len(tt.wantStarts) {
				t.Fatalf("All() = %d blocks, want %d", len(blocks), len(tt.wantStarts))
			}

			for i, start := range tt.wantStarts {
				b := blocks[i]
				if len(b) != tt.size {
					t.Fatalf("block %d has %d samples, want %d", i, len(b), tt.size)
				}
				if b[0] != float64(start) || b[tt.size-1] != float64(start+tt.size-1) {
					t.Errorf("block %d spans [%v, %v], want [%d, %d]",
						i, b[0], b[tt.size-1], start, start+tt.size-1)
				}
			}

			if framer.Emitted() != len(tt.wantStarts) {
				t.Errorf("Emitted() = %d, want %d", framer.Emitted(), len(tt.wantStarts))
			}

			if _, err := framer.Next(); err != io.EOF {
				t.Errorf("Next() after drain error = %v, want io.EOF", err)
			}
		})
	}
}

func TestFramer_Downmixes(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(16000, 2, 2048, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.2
		}
		return 0.4
	})

	framer, err := NewFramer(src, 1024, 0)
	if err != nil {
		t.Fatalf("NewFramer() error = %v", err)
	}

	if framer.SampleRate() != 16000 || framer.Size() != 1024 || framer.Hop() != 1024 {
		t.Errorf("framer = %d Hz size %d hop %d, want 16000/1024/1024",
			framer.SampleRate(), framer.Size(), framer.Hop())
	}

	block, err := framer.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	for i, s := range block {
		if math.Abs(s-0.3) > 1e-6 {
			t.Fatalf("block[%d] = %v, want 0.3", i, s)
		}
	}
}

func TestFramer_BlocksAreIndependent(t *testing.T) {
	t.Parallel()

	framer, err := NewFramer(rampSource(1, 4000), 1000, 500)
	if err != nil {
		t.Fatalf("NewFramer() error = %v", err)
	}

	first, _ := framer.Next()
	second, _ := framer.Next()
	first[500] = -1

	if second[0] != 500 {
		t.Errorf("second[0] = %v after modifying first block, want 500", second[0])
	}
}

func TestFramer_InvalidSizes(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 100)

	if _, err := NewFramer(src, 0, 0); !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("NewFramer(size 0) error = %v, want ErrInvalidBlockSize", err)
	}

	if _, err := NewFramer(src, 100, -1); !errors.Is(err, ErrInvalidHopSize) {
		t.Errorf("NewFramer(hop -1) error = %v, want ErrInvalidHopSize", err)
	}
}

// raggedSource serves interleaved data at most limit values per read, so
// frames get split across calls.
type raggedSource struct {
	channels int
	limit    int
	data     []float32
}

func (s *raggedSource) SampleRate() int { return 8000 }
func (s *raggedSource) Channels() int   { return s.channels }
func (s *raggedSource) BufSize() int    { return 4096 }
func (s *raggedSource) Close() error    { return nil }

func (s *raggedSource) ReadSamples(dst []float32) (int, error) {
	if len(s.data) == 0 {
		return 0, io.EOF
	}

	n := copy(dst[:min(len(dst), s.limit)], s.data)
	s.data = s.data[n:]

	return n, nil
}

// newRaggedStereo holds frames frames with L = i and R = -i/2.
func newRaggedStereo(frames, limit int) *raggedSource {
	data := make([]float32, 0, frames*2)
	for i := range frames {
		data = append(data, float32(i), -float32(i)/2)
	}

	return &raggedSource{channels: 2, limit: limit, data: data}
}

func TestFramer_SplitFrames(t *testing.T) {
	t.Parallel()

	framer, err := NewFramer(newRaggedStereo(30, 3), 10, 0)
	if err != nil {
		t.Fatalf("NewFramer() error = %v", err)
	}

	blocks, err := framer.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	if len(blocks) != 3 {
		t.Fatalf("All() returned %d blocks, want 3", len(blocks))
	}

	for b, block := range blocks {
		for i, got := range block {
			frame := float64(b*10 + i)
			if want := frame / 4; got != want {
				t.Fatalf("block %d sample %d = %v, want %v", b, i, got, want)
			}
		}
	}
}

type errSource struct {
	*audiotest.MockSource
	err error
}

func (s *errSource) ReadSamples(dst []float32) (int, error) { return 0, s.err }

type stallSource struct {
	*audiotest.MockSource
}

func (s *stallSource) ReadSamples(dst []float32) (int, error) { return 0, nil }

func TestFramer_SourceErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")

	framer, err := NewFramer(&errSource{MockSource: audiotest.NewSilentSource(8000, 1, 10), err: boom}, 100, 0)
	if err != nil {
		t.Fatalf("NewFramer() error = %v", err)
	}

	if _, err := framer.Next(); !errors.Is(err, boom) {
		t.Errorf("Next() error = %v, want %v", err, boom)
	}

	framer, err = NewFramer(&stallSource{MockSource: audiotest.NewSilentSource(8000, 1, 10)}, 100, 0)
	if err != nil {
		t.Fatalf("NewFramer() error = %v", err)
	}

	if _, err := framer.Next(); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Next() error = %v, want io.ErrNoProgress", err)
	}
}

func TestFramer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)
	framer, err := NewFramer(src, 10, 0)
	if err != nil {
		t.Fatalf("NewFramer() error = %v", err)
	}

	if err := framer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkFramer_Overlapping(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		framer, _ := NewFramer(audiotest.NewToneSource(44100, 2, 44100, 220, 0.5), 4096, 2048)
		_, _ = framer.All()
	}
}
