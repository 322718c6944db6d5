// SPDX-License-Identifier: EPL-2.0

// Package audio provides the capture side of a pitch analysis pipeline.
//
// This package contains the building blocks that turn decoded audio into
// the fixed-length mono blocks the pitch estimator consumes:
//   - Source interface for audio input
//   - Registry mapping formats to decoders
//   - Resampler for sample rate conversion
//   - Downmix for channel averaging
//   - Framer for cutting a stream into blocks
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples
// returns io.EOF when no more data is available.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	res, err := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := res.ReadSamples(buf)
//
// # Framing
//
// The Framer downmixes to mono and cuts the stream into blocks of a fixed
// size. Blocks may overlap when the hop is smaller than the size:
//
//	framer, err := audio.NewFramer(source, 4096, 2048)
//	for {
//	    block, err := framer.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    hz, _ := pitch.Estimate(block, framer.SampleRate())
//	}
//
// # Format Registry
//
// The registry picks a decoder by format key or file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Open("voice.wav")
package audio
