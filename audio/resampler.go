// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads from a source are tolerated
// in a row before giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// Resampler streams src at another sample rate using Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass is applied to the input to tame aliasing.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame
	channels int

	// hist[1] is the frame at the current integer position, hist[0] the
	// one before and hist[2], hist[3] the two after.
	hist  [4][]float32
	real  [4]bool
	pos   float64 // fractional position between hist[1] and hist[2]
	ready bool
	done  bool

	in     []float32
	inPos  int
	inLen  int
	srcEOF bool

	lowpass bool
	seeded  bool
	alpha   float32
	state   []float32
}

// NewResampler returns a Resampler reading from src and producing
// dstRate Hz. dstRate must be positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, (4096/channels)*channels),
		lowpass:  step > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}

	return nil
}

// pull copies the next source frame into frame and reports whether one
// was available.
func (r *Resampler) pull(frame []float32) (bool, error) {
	empty := 0

	for r.inPos+r.channels > r.inLen {
		if r.srcEOF {
			return false, nil
		}

		// A partial frame left by the previous read moves to the front.
		rest := copy(r.in, r.in[r.inPos:r.inLen])
		r.inPos = 0

		n, err := r.src.ReadSamples(r.in[rest:])
		r.inLen = rest + n

		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("resampler: %w", err)
		}

		if n == 0 && !r.srcEOF {
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass {
		// Seed the filter with the first frame to avoid a warm-up transient.
		if !r.seeded {
			copy(r.state, frame)
			r.seeded = true
		}
		for c := range frame {
			frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = frame[c]
		}
	}

	return true, nil
}

// prime loads the first frame into hist[0..1] and the next two ahead.
func (r *Resampler) prime() error {
	ok, err := r.pull(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.hist[0], r.hist[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.real[i] = ok
	}

	r.ready = true

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	copy(r.real[:], r.real[1:])
	r.hist[3] = first

	ok, err := r.pull(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.real[3] = ok

	return nil
}

// ReadSamples produces interleaved samples at the target rate. len(dst)
// must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.done {
		return 0, io.EOF
	}

	if !r.ready {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				r.done = true
			}
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
			r.pos--
		}

		if !r.real[1] {
			r.done = true
			break
		}

		t := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = catmullRom(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], t)
		}

		written++
		r.pos += r.step
	}

	if r.done {
		if written == 0 {
			return 0, io.EOF
		}
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}

// catmullRom interpolates between y1 and y2 at fraction t in [0, 1].
func catmullRom(y0, y1, y2, y3, t float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*t+a1)*t+a2)*t + y1
}
