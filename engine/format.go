// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gen2brain/malgo"

	"github.com/Kakha01/zari/utils"
)

// Format is the numeric encoding handed to the output device. The mix
// itself always runs in float64; the format only picks the final
// conversion stage.
type Format int

const (
	FormatF32 Format = iota
	FormatU8
	FormatS16
	FormatS24
	FormatS32
)

func (f Format) String() string {
	switch f {
	case FormatF32:
		return "f32"
	case FormatU8:
		return "u8"
	case FormatS16:
		return "s16"
	case FormatS24:
		return "s24"
	case FormatS32:
		return "s32"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a config string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "f32", "":
		return FormatF32, nil
	case "u8":
		return FormatU8, nil
	case "s16":
		return FormatS16, nil
	case "s24":
		return FormatS24, nil
	case "s32":
		return FormatS32, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// SampleBytes is the on-wire size of one sample.
func (f Format) SampleBytes() int {
	switch f {
	case FormatU8:
		return 1
	case FormatS16:
		return 2
	case FormatS24:
		return 3
	default:
		return 4
	}
}

func (f Format) malgoFormat() malgo.FormatType {
	switch f {
	case FormatU8:
		return malgo.FormatU8
	case FormatS16:
		return malgo.FormatS16
	case FormatS24:
		return malgo.FormatS24
	case FormatS32:
		return malgo.FormatS32
	default:
		return malgo.FormatF32
	}
}

// writeSamples converts normalized float64 samples to the device format,
// little-endian. dst must hold len(src)*SampleBytes() bytes.
func writeSamples(dst []byte, src []float64, f Format) {
	switch f {
	case FormatU8:
		for i, s := range src {
			dst[i] = utils.Float64ToUint8(s)
		}
	case FormatS16:
		for i, s := range src {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(utils.Float64ToInt16(s)))
		}
	case FormatS24:
		// top three bytes of the 32-bit mapping
		for i, s := range src {
			v := uint32(utils.Float64ToInt32(s))
			dst[3*i] = byte(v >> 8)
			dst[3*i+1] = byte(v >> 16)
			dst[3*i+2] = byte(v >> 24)
		}
	case FormatS32:
		for i, s := range src {
			binary.LittleEndian.PutUint32(dst[4*i:], uint32(utils.Float64ToInt32(s)))
		}
	default:
		for i, s := range src {
			binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(utils.Float64ToFloat32(s)))
		}
	}
}

// readF32Samples widens captured 32-bit float bytes into normalized
// float64 samples. dst must hold len(src)/4 values.
func readF32Samples(dst []float64, src []byte) {
	for i := range dst {
		bits := binary.LittleEndian.Uint32(src[4*i:])
		dst[i] = utils.Normalize(float64(math.Float32frombits(bits)), utils.ScaleF32)
	}
}
