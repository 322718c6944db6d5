// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audpitch/audio"
	"github.com/ik5/audpitch/formats/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode parses the RIFF header of r and returns a Source over its data
// chunk. go-audio needs to seek, so a plain io.Reader is read into memory
// first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	rate, channels, depth := int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth)

	switch depth {
	case 8:
		// 8-bit WAV samples are unsigned.
		return pcm.NewUnsignedSource(dec, rate, channels, depth), nil
	case 16, 24, 32:
		return pcm.NewSource(dec, rate, channels, depth), nil
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, depth)
	}
}
