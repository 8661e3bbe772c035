// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory buffer of normalized interleaved samples
// as a Source. Useful for attaching recorded takes and generated material.
type BufferSource struct {
	samples    []float64
	sampleRate int
	channels   int

	pos int
}

func NewBufferSource(samples []float64, sampleRate, channels int) (*BufferSource, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}

	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float64) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
