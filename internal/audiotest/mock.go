// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio on demand and implements audio.Source
// without importing it, so the audio package can use it in its own tests.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to produce
	read       int // frames produced so far
	closed     bool
	waveform   func(frame int, channel int) float32
}

// NewMockSource returns a source of frames frames where every sample is
// produced by waveform.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource returns a source of zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource returns a source where every sample equals value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewToneSource returns a sine of freq Hz with the given peak amplitude on
// every channel.
func NewToneSource(sampleRate, channels, frames int, freq, amplitude float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		return float32(amplitude * math.Sin(2*math.Pi*freq*float64(frame)/float64(sampleRate)))
	})
}

// NewSegmentedSource plays each frequency for segment frames in turn. A
// frequency of 0 produces silence for that segment.
func NewSegmentedSource(sampleRate, segment int, amplitude float64, freqs ...float64) *MockSource {
	return NewMockSource(sampleRate, 1, segment*len(freqs), func(frame int, _ int) float32 {
		f := freqs[frame/segment]
		if f == 0 {
			return 0
		}
		return float32(amplitude * math.Sin(2*math.Pi*f*float64(frame)/float64(sampleRate)))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

// Close marks the source closed. Closed reports it.
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.read = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.read >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.read)

	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.read+f, ch)
		}
	}

	m.read += n

	if m.read >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}
