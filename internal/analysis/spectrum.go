package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the DFT of data
// after removing its mean. Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return []float64{}
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-zero bin of ps and its
// frequency in cycles per sample for a signal of n samples. bin is -1 when
// there is no such bin.
func DominantFrequency(ps []float64, n int) (bin int, freq float64) {
	bin = -1
	best := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > best {
			best, bin = ps[i], i
		}
	}
	if bin < 0 || n <= 0 {
		return bin, 0
	}
	return bin, float64(bin) / float64(n)
}
