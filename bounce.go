// SPDX-License-Identifier: EPL-2.0

package zari

import (
	"io"

	"github.com/Kakha01/zari/formats/wav"
	"github.com/Kakha01/zari/timeline"
)

// bounceBlockFrames is the render block size used for offline export.
const bounceBlockFrames = 4096

// Bounce renders the whole timeline offline through the normal mix path
// and writes it as a PCM WAV at the given channel count and bit depth.
// The playhead is reset before and after, so a bounce never disturbs the
// transport position.
func Bounce(tl *timeline.Timeline, w io.WriteSeeker, outChannels, bitDepth int) error {
	if outChannels <= 0 {
		return wav.ErrUnsupportedLayout
	}

	tl.ResetPlayhead()
	defer tl.ResetPlayhead()

	total := tl.DurationFrames()
	samples := make([]float64, 0, total*uint64(outChannels))
	block := make([]float64, bounceBlockFrames*outChannels)

	for tl.Playhead() < total {
		frames := total - tl.Playhead()
		if frames > bounceBlockFrames {
			frames = bounceBlockFrames
		}

		dst := block[:frames*uint64(outChannels)]
		tl.Render(dst, outChannels)
		samples = append(samples, dst...)
	}

	return wav.Encode(w, samples, tl.SampleRate(), outChannels, bitDepth)
}
