// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

const (
	sincTaps         = 256
	sincOversampling = 256
)

// sincf is the normalized sinc function sin(pi*x)/(pi*x).
func sincf(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x
	return math.Sin(px) / px
}

// blackmanHarris2 evaluates the squared 4-term Blackman-Harris window of
// npoints points at index i.
func blackmanHarris2(i, npoints int) float64 {
	x := 2 * math.Pi * float64(i) / float64(npoints-1)
	w := 0.35875 - 0.48829*math.Cos(x) + 0.14128*math.Cos(2*x) - 0.01168*math.Cos(3*x)

	return w * w
}

// makeSincBank builds oversampled windowed-sinc filter tables. It returns
// oversampling+1 phases of taps coefficients each; adjacent phases are
// blended linearly for sub-phase positions. Coefficients are normalized so
// a DC input keeps unity gain.
func makeSincBank(taps, oversampling int, cutoff float64) [][]float64 {
	tot := taps * oversampling

	y := make([]float64, tot+1)
	for i := range tot + 1 {
		w := blackmanHarris2(i, tot+1)
		x := (float64(i) - float64(tot)/2) / float64(oversampling)
		y[i] = w * sincf(x*cutoff)
	}

	var sum float64
	for i := range tot {
		sum += y[i]
	}
	norm := sum / float64(oversampling)

	bank := make([][]float64, oversampling+1)
	for p := range bank {
		phase := make([]float64, taps)
		for n := range phase {
			phase[n] = y[n*oversampling+p] / norm
		}
		bank[p] = phase
	}

	return bank
}
