// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/Kakha01/zari/audio"
	"github.com/Kakha01/zari/utils"
)

type source struct {
	stream     *flac.Stream
	sampleRate int
	channels   int
	scale      utils.Scale

	// pending holds decoded samples of the current frame not yet handed out.
	pending []float64
	offset  int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	var written int
	for written < len(dst) {
		if s.offset >= len(s.pending) {
			if err := s.parseFrame(); err != nil {
				if err == io.EOF && written > 0 {
					return written, io.EOF
				}
				return written, err
			}
		}

		n := copy(dst[written:], s.pending[s.offset:])
		s.offset += n
		written += n
	}

	return written, nil
}

// parseFrame decodes the next FLAC frame, interleaving its planar channel
// data into pending.
func (s *source) parseFrame() error {
	fr, err := s.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("%w", err)
	}

	if len(fr.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream %d", ErrCorruptStream, len(fr.Subframes), s.channels)
	}

	s.pending = interleaveSubframes(s.pending, fr.Subframes, s.channels, s.scale)
	s.offset = 0

	return nil
}

// interleaveSubframes turns planar subframe samples into one interleaved
// normalized buffer, reusing dst's capacity.
func interleaveSubframes(dst []float64, subframes []*frame.Subframe, channels int, scale utils.Scale) []float64 {
	frames := len(subframes[0].Samples)
	needed := frames * channels

	if cap(dst) < needed {
		dst = make([]float64, needed)
	}
	dst = dst[:needed]

	for ch, sub := range subframes {
		for i, v := range sub.Samples {
			dst[i*channels+ch] = utils.Normalize(float64(v), scale)
		}
	}

	return dst
}

// Decoder parses FLAC streams via mewkiz/flac into normalized sources.
// The stream's bit depth (8, 16, 24 or 32) picks the normalization scale.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		return nil, ErrCorruptStream
	}

	scale, err := utils.ScaleFor(int(info.BitsPerSample), false)
	if err != nil {
		return nil, err
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      scale,
	}, nil
}
