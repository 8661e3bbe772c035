// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"

	"github.com/Kakha01/zari/audio"
)

// Clip is an immutable run of normalized interleaved samples anchored at a
// timeline frame. Its buffer always holds whole frames and is created at the
// timeline's sample rate, so the render path never converts anything.
type Clip struct {
	samples  []float64
	channels int
	start    uint64
}

// NewClip wraps an already normalized buffer. Only mono and stereo clips are
// accepted, and the buffer must align to whole frames.
func NewClip(samples []float64, channels int, start uint64) (*Clip, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples over %d channels", ErrPartialFrame, len(samples), channels)
	}

	return &Clip{
		samples:  samples,
		channels: channels,
		start:    start,
	}, nil
}

// NewClipFromSource drains a decoded source and converts it to the timeline
// rate. When the rates already match the samples pass through untouched, so
// no filter artifacts are introduced.
func NewClipFromSource(src audio.Source, start uint64, timelineRate int) (*Clip, error) {
	channels := src.Channels()
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	samples, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if src.SampleRate() != timelineRate {
		samples, err = audio.Resample(samples, channels, src.SampleRate(), timelineRate)
		if err != nil {
			return nil, err
		}
	}

	return NewClip(samples, channels, start)
}

func (c *Clip) Start() uint64 { return c.start }

// End is the first frame past the clip.
func (c *Clip) End() uint64 {
	return c.start + c.DurationFrames()
}

func (c *Clip) DurationFrames() uint64 {
	return uint64(len(c.samples) / c.channels)
}

func (c *Clip) Channels() int    { return c.channels }
func (c *Clip) SampleCount() int { return len(c.samples) }
func (c *Clip) IsMono() bool     { return c.channels == 1 }
func (c *Clip) IsStereo() bool   { return c.channels == 2 }

// Contribute mixes this clip's frame at playhead into frame, which holds one
// sample per output channel. The caller guarantees
// Start() <= playhead < End(); the hot path carries no range checks. Writes
// are additive and the buffer is never cleared here.
//
// Mono clips feed every output channel. Stereo clips feed left to channel 0
// and right to channel 1; a mono output receives the unattenuated sum of
// both sides.
func (c *Clip) Contribute(frame []float64, volume float64, outChannels int, playhead uint64) {
	offset := playhead - c.start

	if c.channels == 1 {
		s := c.samples[offset] * volume
		for ch := 0; ch < outChannels; ch++ {
			frame[ch] += s
		}

		return
	}

	left := c.samples[2*offset] * volume
	right := c.samples[2*offset+1] * volume

	if outChannels == 1 {
		frame[0] += left + right
		return
	}

	frame[0] += left
	frame[1] += right
}
