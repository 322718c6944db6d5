// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages interleaved frames from src into mono samples in dst and
// returns the number of frames written: the smaller of len(dst) and the
// number of whole frames in src.
func Downmix(dst []float64, src []float32, channels int) int {
	if channels <= 0 {
		return 0
	}

	frames := min(len(dst), len(src)/channels)

	switch channels {
	case 1:
		for i := range frames {
			dst[i] = float64(src[i])
		}
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (float64(src[idx]) + float64(src[idx+1])) * 0.5
		}
	default:
		inv := 1 / float64(channels)
		for f := range frames {
			sum := 0.0
			base := f * channels
			for c := range channels {
				sum += float64(src[base+c])
			}
			dst[f] = sum * inv
		}
	}

	return frames
}
