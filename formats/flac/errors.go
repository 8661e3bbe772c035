// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var ErrCorruptStream = errors.New("corrupt FLAC stream")
