// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/Kakha01/zari/utils"
)

// Encode writes normalized interleaved samples as a PCM WAV at the given
// bit depth (8, 16, 24 or 32). 8-bit output is unsigned per the WAV
// convention; the rest are signed little-endian.
func Encode(w io.WriteSeeker, samples []float64, sampleRate, channels, bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}

	if channels <= 0 {
		return ErrUnsupportedLayout
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}

	for i, s := range samples {
		buf.Data[i] = quantize(s, bitDepth)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func quantize(s float64, bitDepth int) int {
	switch bitDepth {
	case 8:
		return int(utils.Float64ToUint8(s))
	case 16:
		return int(utils.Float64ToInt16(s))
	case 24:
		return int(utils.Float64ToInt32(s) >> 8)
	default:
		return int(utils.Float64ToInt32(s))
	}
}
