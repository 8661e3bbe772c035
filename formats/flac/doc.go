// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams into normalized audio sources using
// mewkiz/flac. Subframes arrive planar per channel and are interleaved
// while normalizing.
package flac
