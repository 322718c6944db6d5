// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III files with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so the source reports two
// channels regardless of the file's channel mode. Feed it through
// audio.NewFramer (which downmixes) before pitch analysis:
//
//	file, _ := os.Open("voice.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	framer, err := audio.NewFramer(source, 2048, 512)
package mp3
