// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"fmt"
)

// Scale identifies the numeric layout of raw PCM values feeding the
// normalizer.
type Scale int

const (
	ScaleI8 Scale = iota
	ScaleI16
	ScaleI24
	ScaleI32
	ScaleF32
)

// Peak scale factors, one per integer layout. Dividing by the positive
// maximum maps +max to exactly +1.0; the negative extreme lands just past
// -1.0 and relies on the clamp.
const (
	scaleFactorI8  = 1.0 / 127.0
	scaleFactorI16 = 1.0 / 32767.0
	scaleFactorI24 = 1.0 / 8388607.0
	scaleFactorI32 = 1.0 / 2147483647.0
)

var ErrUnsupportedBitDepth = errors.New("unsupported bits per sample")

// Factor returns the multiplier applied to a raw value of this scale.
// Float input is already normalized, so its factor is 1.
func (s Scale) Factor() float64 {
	switch s {
	case ScaleI8:
		return scaleFactorI8
	case ScaleI16:
		return scaleFactorI16
	case ScaleI24:
		return scaleFactorI24
	case ScaleI32:
		return scaleFactorI32
	default:
		return 1.0
	}
}

// ScaleFor maps a source bit depth to its Scale. 24-bit covers samples
// carried in a 32-bit container. Only 32-bit floats are accepted on the
// float side.
func ScaleFor(bitDepth int, isFloat bool) (Scale, error) {
	if isFloat {
		if bitDepth == 32 {
			return ScaleF32, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	switch bitDepth {
	case 8:
		return ScaleI8, nil
	case 16:
		return ScaleI16, nil
	case 24:
		return ScaleI24, nil
	case 32:
		return ScaleI32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize converts one raw sample value to the canonical [-1, 1] range.
// The caller widens the raw integer (or float32) to float64 first.
func Normalize(v float64, s Scale) float64 {
	return Clamp(v*s.Factor(), -1.0, 1.0)
}

// NormalizeInts appends the normalized form of each raw integer sample to
// dst and returns the extended slice.
func NormalizeInts(dst []float64, src []int, s Scale) []float64 {
	for _, v := range src {
		dst = append(dst, Normalize(float64(v), s))
	}
	return dst
}

// Float64ToUint8 maps a normalized sample to the unsigned 8-bit output
// range. 0.0 maps to 127, +1.0 to 255, -1.0 to 0.
func Float64ToUint8(x float64) uint8 {
	x = Clamp(x, -1.0, 1.0)
	return uint8((x + 1.0) * 127.5)
}

// Float64ToInt16 maps a normalized sample to signed 16-bit output.
// Uses 32767 for both directions, so -1.0 maps to -32767, not -32768.
func Float64ToInt16(x float64) int16 {
	x = Clamp(x, -1.0, 1.0)
	return int16(x * 32767.0)
}

// Float64ToInt32 maps a normalized sample to signed 32-bit output.
func Float64ToInt32(x float64) int32 {
	x = Clamp(x, -1.0, 1.0)
	return int32(x * 2147483647.0)
}

// Float64ToFloat32 narrows a sample for float output. No clamp: float
// targets accept values outside [-1, 1].
func Float64ToFloat32(x float64) float32 {
	return float32(x)
}
