// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/Kakha01/zari/utils"
)

// Sinc converts PCM between two fixed sample rates using an oversampled
// windowed-sinc filter bank. Works on whole buffers; preserves channel
// count. The cutoff sits at 0.95 of the lower of the two Nyquist
// frequencies, so downsampling is anti-aliased.
type Sinc struct {
	fromRate int
	toRate   int

	// ratio = toRate / fromRate, output frames per input frame
	ratio float64

	bank [][]float64
}

func NewSinc(fromRate, toRate int) (*Sinc, error) {
	if fromRate <= 0 || toRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, fromRate, toRate)
	}

	ratio := float64(toRate) / float64(fromRate)
	cutoff := 0.95
	if ratio < 1 {
		cutoff *= ratio
	}

	return &Sinc{
		fromRate: fromRate,
		toRate:   toRate,
		ratio:    ratio,
		bank:     makeSincBank(sincTaps, sincOversampling, cutoff),
	}, nil
}

func (s *Sinc) FromRate() int  { return s.fromRate }
func (s *Sinc) ToRate() int    { return s.toRate }
func (s *Sinc) Ratio() float64 { return s.ratio }

// ResampleChannel converts a single channel. Output frame m interpolates
// input position m/ratio; the input is zero-padded by half a window on both
// sides, so output length is ceil(len(input)*ratio).
func (s *Sinc) ResampleChannel(input []float64) []float64 {
	outFrames := int(math.Ceil(float64(len(input)) * s.ratio))
	out := make([]float64, outFrames)
	if len(input) == 0 {
		return out
	}

	half := sincTaps / 2
	padded := make([]float64, half+len(input)+half+1)
	copy(padded[half:], input)

	for m := range out {
		pos := float64(m) / s.ratio
		n0 := int(pos)
		frac := pos - float64(n0)

		// Sub-sample position selects a pair of adjacent phase filters.
		pf := (1 - frac) * sincOversampling
		pLo := int(pf)
		if pLo > sincOversampling-1 {
			pLo = sincOversampling - 1
		}
		alpha := pf - float64(pLo)

		seg := padded[n0+1 : n0+1+sincTaps]
		d1 := dot(s.bank[pLo], seg)
		d2 := dot(s.bank[pLo+1], seg)

		out[m] = d1 + alpha*(d2-d1)
	}

	return out
}

// Resample converts interleaved samples, channel by channel.
// Returns ErrResample when len(samples) is not a multiple of channels.
func (s *Sinc) Resample(samples []float64, channels int) ([]float64, error) {
	if channels <= 0 || len(samples) == 0 {
		return []float64{}, nil
	}

	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples over %d channels", ErrResample, len(samples), channels)
	}

	planes := utils.Deinterleave(samples, channels)
	for i, plane := range planes {
		planes[i] = s.ResampleChannel(plane)
	}

	return utils.Interleave(planes), nil
}

// Resample is the one-shot form. Empty input or channels <= 0 returns an
// empty output without building the filter bank.
func Resample(samples []float64, channels, fromRate, toRate int) ([]float64, error) {
	if channels <= 0 || len(samples) == 0 {
		return []float64{}, nil
	}

	s, err := NewSinc(fromRate, toRate)
	if err != nil {
		return nil, err
	}

	return s.Resample(samples, channels)
}

func dot(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}

	return sum
}
