// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidRate = errors.New("sample rates must be positive")
	ErrResample    = errors.New("sample count must be multiple of channels")
	ErrNoChannels  = errors.New("channel count must be positive")
)
