// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use github.com/go-audio/wav. Decoding accepts integer
// PCM at 8 (unsigned), 16, 24 or 32 bits with any channel count and sample rate.
// Encoding writes mono 16-bit PCM, which is what the tone generator and
// test fixtures need.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("voice.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // wav.ErrNotWavFile, wav.ErrUnsupportedFormat, ...
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
//
// # Writing WAV Files
//
//	file, _ := os.Create("tone.wav")
//	err := wav.WriteMono(file, 16000, samples)
//
// The encoder seeks back to patch chunk sizes, so w must be an
// io.WriteSeeker such as *os.File.
package wav
