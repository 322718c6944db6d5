// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The source keeps the stream's channel count and sample rate and yields
// interleaved float32 samples, always in whole frames:
//
//	file, _ := os.Open("voice.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer source.Close()
//
// Encoding is not supported.
package vorbis
