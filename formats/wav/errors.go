// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWav            = errors.New("not a WAV file")
	ErrUnsupportedLayout = errors.New("unsupported WAV layout")
	ErrMissingData       = errors.New("no data chunk found")
	ErrInvalidBitDepth   = errors.New("unsupported output bit depth")
)
