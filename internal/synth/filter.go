package synth

import (
	"fmt"
	"math"
)

// A 4th-order Butterworth low-pass is a cascade of two second-order
// sections whose Q values place the analog poles on the unit circle at
// pi/8 and 3*pi/8.
var butterworthQ = [2]float64{
	1 / (2 * math.Cos(math.Pi/8)),
	1 / (2 * math.Cos(3*math.Pi/8)),
}

type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// lowpassBiquad computes bilinear-transform low-pass coefficients for
// one section, normalized so a0 = 1.
func lowpassBiquad(sampleRate int, cutoff, q float64) biquad {
	omega := 2 * math.Pi * cutoff / float64(sampleRate)
	sinW := math.Sin(omega)
	cosW := math.Cos(omega)
	alpha := sinW / (2 * q)

	a0 := 1 + alpha
	return biquad{
		b0: (1 - cosW) / 2 / a0,
		b1: (1 - cosW) / a0,
		b2: (1 - cosW) / 2 / a0,
		a1: -2 * cosW / a0,
		a2: (1 - alpha) / a0,
	}
}

// process runs the section over buf in direct form I with zero initial
// state, writing into out (which may alias buf).
func (f biquad) process(out, buf []float64) {
	var x1, x2, y1, y2 float64
	for i, x0 := range buf {
		y0 := f.b0*x0 + f.b1*x1 + f.b2*x2 - f.a1*y1 - f.a2*y2
		x2, x1 = x1, x0
		y2, y1 = y1, y0
		out[i] = y0
	}
}

// LowPass applies a fixed 4th-order Butterworth low-pass filter and
// returns a new buffer of the same length. The cutoff is clamped to
// 0.99x the Nyquist frequency; higher values make the bilinear
// transform unstable.
func LowPass(signal []float64, cutoff float64, sampleRate int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: cutoff must be positive, got %g", ErrInvalidParameter, cutoff)
	}
	nyquist := float64(sampleRate) / 2
	if cutoff > 0.99*nyquist {
		cutoff = 0.99 * nyquist
	}

	out := make([]float64, len(signal))
	copy(out, signal)
	for _, q := range butterworthQ {
		lowpassBiquad(sampleRate, cutoff, q).process(out, out)
	}
	return out, nil
}

// SweepLowPass filters signal in fixed-size chunks, with the cutoff for
// each chunk taken from cutoffAt evaluated at the chunk midpoint. Each
// chunk is filtered together with up to lookback preceding input
// samples and only the chunk-length tail is kept; filtering chunks in
// isolation leaves the filter state cold at every boundary and produces
// audible clicks.
func SweepLowPass(signal []float64, sampleRate, chunkSize, lookback int, cutoffAt func(sample int) float64) ([]float64, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidParameter, chunkSize)
	}
	if lookback < 0 {
		return nil, fmt.Errorf("%w: lookback must be non-negative, got %d", ErrInvalidParameter, lookback)
	}

	n := len(signal)
	out := make([]float64, n)
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		mid := (start + end) / 2
		if mid > n-1 {
			mid = n - 1
		}
		cutoff := cutoffAt(mid)

		from := start - lookback
		if from < 0 {
			from = 0
		}
		filtered, err := LowPass(signal[from:end], cutoff, sampleRate)
		if err != nil {
			return nil, err
		}
		copy(out[start:end], filtered[len(filtered)-(end-start):])
	}
	return out, nil
}

// SineLFO returns a unipolar low-frequency oscillator value in [0,1]
// for the given sample index: 0.5 + 0.5*sin(2*pi*rate*t). Cutoff
// mappings compose it as base + span*lfo.
func SineLFO(rateHz float64, sample, sampleRate int) float64 {
	t := float64(sample) / float64(sampleRate)
	return 0.5 + 0.5*math.Sin(2*math.Pi*rateHz*t)
}
