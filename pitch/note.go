// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"fmt"
	"math"
)

// ReferenceA4 is the tuning reference used by NoteName.
const ReferenceA4 = 440.0

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName maps freq to the nearest equal-tempered note and the offset from
// it in cents. It returns "" for NoPitch and other non-positive values.
func NoteName(freq float64) (string, float64) {
	if !(freq > 0) || math.IsInf(freq, 0) {
		return "", 0
	}

	// MIDI numbering: A4 = 69.
	semitones := 12 * math.Log2(freq/ReferenceA4)
	midi := int(math.Round(semitones)) + 69
	cents := (semitones - math.Round(semitones)) * 100

	idx := ((midi % 12) + 12) % 12
	octave := midi/12 - 1
	if midi < 0 && midi%12 != 0 {
		octave--
	}

	return fmt.Sprintf("%s%d", noteNames[idx], octave), cents
}
