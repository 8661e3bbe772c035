// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE streams into normalized audio sources and
// encodes normalized samples back to PCM WAV files.
//
// The decoder walks the chunk list, accepts PCM at 8, 16, 24 and 32 bits
// plus 32-bit IEEE float, and normalizes every sample to float64 in
// [-1, 1] using the canonical peak scales. The encoder writes PCM through
// the go-audio/wav encoder at any of the four integer depths.
//
//	f, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
//	out, _ := os.Create("bounce.wav")
//	err = wav.Encode(out, samples, 44100, 2, 16)
package wav
