package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// PowerSpectrum removes the mean, zero-pads to a power of two and returns
// the magnitudes of bins [0, n/2). It also returns the padded length.
func PowerSpectrum(data []float64) ([]float64, int) {
	n := nextPow2(len(data))
	padded := make([]float64, n)

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	if len(data) > 0 {
		mean /= float64(len(data))
	}
	for i, v := range data {
		padded[i] = v - mean
	}

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps, n
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// bin of samples spaced dt seconds apart.
func DominantFrequency(samples []float64, dt float64) (float64, error) {
	if len(samples) < 4 {
		return 0, ErrTooShort
	}
	if !(dt > 0) {
		return 0, errors.New("analysis: sample spacing must be positive")
	}

	ps, n := PowerSpectrum(samples)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	return float64(maxIdx) / (float64(n) * dt), nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
