// SPDX-License-Identifier: EPL-2.0

package timeline

import "errors"

var (
	ErrTrackNotFound       = errors.New("track not found")
	ErrInvalidVolume       = errors.New("volume must be between 0.0 and 1.0")
	ErrUnsupportedChannels = errors.New("clips must be mono or stereo")
	ErrPartialFrame        = errors.New("sample count must be multiple of channels")
)
