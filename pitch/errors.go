// SPDX-License-Identifier: EPL-2.0

package pitch

import "errors"

var (
	// ErrEmptyBlock is returned when the sample block has no samples.
	ErrEmptyBlock = errors.New("pitch: empty sample block")

	// ErrInvalidSampleRate is returned for a sample rate that is not positive.
	ErrInvalidSampleRate = errors.New("pitch: sample rate must be positive")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("pitch: invalid config")
)
