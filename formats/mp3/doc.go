// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into normalized audio sources using
// hajimehoshi/go-mp3, which always emits stereo 16-bit PCM.
package mp3
