// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/Kakha01/zari/audio"
	"github.com/Kakha01/zari/utils"
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	scale      utils.Scale

	bytesPerSample int
	remaining      int64 // bytes left in the data chunk

	buf []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int    { return 4096 }

func (s *wavSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.remaining <= 0 {
		return 0, io.EOF
	}

	want := int64(len(dst) * s.bytesPerSample)
	if want > s.remaining {
		want = s.remaining
	}

	if cap(s.buf) < int(want) {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	s.remaining -= int64(n)

	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / s.bytesPerSample
	for i := range samples {
		dst[i] = s.decodeSample(s.buf[i*s.bytesPerSample:])
	}

	if samples == 0 {
		return 0, io.EOF
	}

	if s.remaining <= 0 || err != nil {
		return samples, io.EOF
	}

	return samples, nil
}

// decodeSample reads one raw sample at b and normalizes it to [-1, 1].
func (s *wavSource) decodeSample(b []byte) float64 {
	switch s.scale {
	case utils.ScaleI8:
		// 8-bit WAV is stored unsigned, midpoint 128.
		return utils.Normalize(float64(int(b[0])-128), s.scale)
	case utils.ScaleI16:
		return utils.Normalize(float64(int16(binary.LittleEndian.Uint16(b))), s.scale)
	case utils.ScaleI24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		// sign-extend from 24 bits
		v = v << 8 >> 8
		return utils.Normalize(float64(v), s.scale)
	case utils.ScaleI32:
		return utils.Normalize(float64(int32(binary.LittleEndian.Uint32(b))), s.scale)
	default:
		return utils.Normalize(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), s.scale)
	}
}

// Decoder parses RIFF/WAVE streams into normalized sources. PCM at 8, 16,
// 24 and 32 bits and 32-bit IEEE float are supported.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	header := make([]byte, 12)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWav
	}

	var (
		haveFmt       bool
		audioFormat   int
		channels      int
		sampleRate    int
		bitsPerSample int
	)

	// Walk chunks until the data chunk; anything else is skipped.
	chunk := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, chunk); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrMissingData
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(chunk[0:4])
		size := int64(binary.LittleEndian.Uint32(chunk[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedLayout
			}

			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w", err)
			}

			audioFormat = int(binary.LittleEndian.Uint16(body[0:2]))
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrUnsupportedLayout
			}

			return newSource(r, audioFormat, channels, sampleRate, bitsPerSample, size)

		default:
			// Chunks are word-aligned; odd sizes carry a pad byte.
			skip := size
			if skip%2 == 1 {
				skip++
			}

			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
		}
	}
}

func newSource(r io.Reader, audioFormat, channels, sampleRate, bitsPerSample int, dataSize int64) (audio.Source, error) {
	if channels <= 0 || sampleRate <= 0 {
		return nil, ErrUnsupportedLayout
	}

	var isFloat bool
	switch audioFormat {
	case formatPCM:
	case formatIEEEFloat:
		isFloat = true
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnsupportedLayout, audioFormat)
	}

	scale, err := utils.ScaleFor(bitsPerSample, isFloat)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		r:              r,
		sampleRate:     sampleRate,
		channels:       channels,
		scale:          scale,
		bytesPerSample: bitsPerSample / 8,
		remaining:      dataSize,
		buf:            make([]byte, 4096),
	}, nil
}
