// SPDX-License-Identifier: EPL-2.0

package audpitch

import (
	"github.com/ik5/audpitch/audio"
	"github.com/ik5/audpitch/formats/aiff"
	"github.com/ik5/audpitch/formats/mp3"
	"github.com/ik5/audpitch/formats/vorbis"
	"github.com/ik5/audpitch/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}
