// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiff           = errors.New("not an AIFF file")
	ErrUnsupportedLayout = errors.New("unsupported AIFF layout")
)
