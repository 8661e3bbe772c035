// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF streams into normalized audio sources using
// go-audio/aiff. Signed PCM at 8, 16, 24 and 32 bits is supported.
package aiff
