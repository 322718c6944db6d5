// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Framer cuts a Source into fixed-length mono blocks. Consecutive blocks
// start hop samples apart, so hop < size overlaps them and hop > size
// skips audio between them. A trailing block shorter than size is
// dropped.
type Framer struct {
	src      Source
	size     int
	hop      int
	channels int

	chunk   []float32
	carry   int // values of an incomplete frame at the start of chunk
	pending []float64
	skip    int
	eof     bool
	emitted int
}

// NewFramer returns a Framer producing blocks of size samples every hop
// samples. A hop of 0 means hop = size.
func NewFramer(src Source, size, hop int) (*Framer, error) {
	if size <= 0 {
		return nil, ErrInvalidBlockSize
	}
	if hop < 0 {
		return nil, ErrInvalidHopSize
	}
	if hop == 0 {
		hop = size
	}

	channels := max(src.Channels(), 1)
	frames := max(src.BufSize()/channels, 1024)

	return &Framer{
		src:      src,
		size:     size,
		hop:      hop,
		channels: channels,
		chunk:    make([]float32, frames*channels),
		pending:  make([]float64, 0, size+frames),
	}, nil
}

func (f *Framer) SampleRate() int { return f.src.SampleRate() }
func (f *Framer) Size() int       { return f.size }
func (f *Framer) Hop() int        { return f.hop }

// Emitted is the number of blocks returned so far.
func (f *Framer) Emitted() int { return f.emitted }

func (f *Framer) Close() error {
	if err := f.src.Close(); err != nil {
		return fmt.Errorf("framer: %w", err)
	}

	return nil
}

// fill reads from the source until a full block is pending or the source
// is exhausted.
func (f *Framer) fill() error {
	empty := 0

	for len(f.pending) < f.size && !f.eof {
		n, err := f.src.ReadSamples(f.chunk[f.carry:])
		if err == io.EOF {
			f.eof = true
		} else if err != nil {
			return fmt.Errorf("framer: %w", err)
		}

		if n == 0 {
			if !f.eof {
				empty++
				if empty >= maxEmptyReads {
					return io.ErrNoProgress
				}
			}
			continue
		}
		empty = 0

		total := f.carry + n
		frames := total / f.channels
		start := 0
		if f.skip > 0 {
			start = min(f.skip, frames)
			f.skip -= start
		}

		used := len(f.pending)
		f.pending = append(f.pending, make([]float64, frames-start)...)
		Downmix(f.pending[used:], f.chunk[start*f.channels:frames*f.channels], f.channels)

		f.carry = copy(f.chunk, f.chunk[frames*f.channels:total])
	}

	return nil
}

// Next returns the next block. The slice is owned by the caller. It
// returns io.EOF once fewer than Size samples remain.
func (f *Framer) Next() ([]float64, error) {
	if err := f.fill(); err != nil {
		return nil, err
	}

	if len(f.pending) < f.size {
		return nil, io.EOF
	}

	block := make([]float64, f.size)
	copy(block, f.pending)

	if f.hop <= len(f.pending) {
		f.pending = append(f.pending[:0], f.pending[f.hop:]...)
	} else {
		f.skip = f.hop - len(f.pending)
		f.pending = f.pending[:0]
	}

	f.emitted++

	return block, nil
}

// All drains the framer and returns every block.
func (f *Framer) All() ([][]float64, error) {
	var blocks [][]float64

	for {
		block, err := f.Next()
		if err == io.EOF {
			return blocks, nil
		}
		if err != nil {
			return blocks, err
		}

		blocks = append(blocks, block)
	}
}
