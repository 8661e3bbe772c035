// SPDX-License-Identifier: EPL-2.0

package utils

// Deinterleave splits an interleaved buffer into one slice per channel.
// Empty input yields channels empty slices. Samples are taken at stride,
// so a partial trailing frame leaves the low channels one sample longer.
func Deinterleave(samples []float64, channels int) [][]float64 {
	if channels <= 0 {
		return nil
	}

	out := make([][]float64, channels)
	if len(samples) == 0 {
		return out
	}

	frames := len(samples) / channels
	for ch := range channels {
		out[ch] = make([]float64, 0, frames+1)
		for i := ch; i < len(samples); i += channels {
			out[ch] = append(out[ch], samples[i])
		}
	}

	return out
}

// Interleave merges per-channel slices back into a single interleaved
// buffer. The frame count is the longest channel; shorter channels are
// padded with 0.0.
func Interleave(channels [][]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}

	maxFrames := 0
	for _, ch := range channels {
		if len(ch) > maxFrames {
			maxFrames = len(ch)
		}
	}

	out := make([]float64, 0, maxFrames*len(channels))
	for frame := range maxFrames {
		for _, ch := range channels {
			if frame < len(ch) {
				out = append(out, ch[frame])
			} else {
				out = append(out, 0.0)
			}
		}
	}

	return out
}
