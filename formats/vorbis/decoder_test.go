// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggReader mimics oggvorbis.Reader: Read fills p with interleaved
// values and returns how many values it wrote.
type mockOggReader struct {
	sampleRate int
	channels   int
	data       []float32
	limit      int
	err        error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}

	n := min(len(p), len(m.data))
	if m.limit > 0 {
		n = min(n, m.limit)
	}
	copy(p, m.data[:n])
	m.data = m.data[n:]

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("OggS but not really"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid input")
	}
}

func TestNewSource_InvalidChannels(t *testing.T) {
	t.Parallel()

	if _, err := newSource(&mockOggReader{sampleRate: 44100}); err == nil {
		t.Error("newSource() error = nil, want error for zero channels")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, err := newSource(&mockOggReader{sampleRate: 48000, channels: 2})
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	if src.SampleRate() != 48000 || src.Channels() != 2 || src.BufSize() != 4096 {
		t.Errorf("source = %d Hz/%d ch/%d buf, want 48000/2/4096",
			src.SampleRate(), src.Channels(), src.BufSize())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src, _ := newSource(&mockOggReader{sampleRate: 44100, channels: 2, data: append([]float32(nil), data...)})

	var got []float32
	buf := make([]float32, 4)
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(data) {
		t.Fatalf("read %d values, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], data[i])
		}
	}
}

func TestSource_WholeFrames(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockOggReader{sampleRate: 44100, channels: 2, data: make([]float32, 10)})

	// 5 slots only hold 2 stereo frames.
	n, err := src.ReadSamples(make([]float32, 5))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() = %d, want 4", n)
	}

	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	src, _ := newSource(&mockOggReader{sampleRate: 44100, channels: 1, err: boom})

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
