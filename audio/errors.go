// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrInvalidBlockSize = errors.New("block size must be positive")
	ErrInvalidHopSize   = errors.New("hop size must be positive")
	ErrInvalidRate      = errors.New("sample rate must be positive")
	ErrUnknownFormat    = errors.New("no decoder registered for format")
)
