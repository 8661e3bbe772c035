// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/Kakha01/zari/audio"
	"github.com/Kakha01/zari/utils"
)

// oggReader is the slice of oggvorbis.Reader the source needs; tests swap
// in a mock.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	buf        []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf) < len(dst) {
		s.buf = make([]float32, len(dst))
	}
	s.buf = s.buf[:len(dst)]

	// oggvorbis returns interleaved float32 values.
	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	for i := range n {
		dst[i] = utils.Normalize(float64(s.buf[i]), utils.ScaleF32)
	}

	return n, err
}

// Decoder wraps jfreymuth/oggvorbis. Vorbis decodes straight to float, so
// only the [-1, 1] clamp applies.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		buf:        make([]float32, 4096),
	}, nil
}
