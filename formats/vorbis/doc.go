// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into normalized audio sources
// using jfreymuth/oggvorbis.
package vorbis
