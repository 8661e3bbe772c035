// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrClosed            = errors.New("engine is closed")
)
