// Package synth implements the offline synthesis core: oscillators,
// envelopes, filtering and buffer math. All generators produce finite
// float64 sample buffers at an explicit sample rate; nothing here
// touches the wall clock or any I/O.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/viterin/vek"
)

// ErrInvalidParameter marks synthesis parameter validation failures.
// Callers test for it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// NumSamples returns the buffer length for a duration at a sample rate.
func NumSamples(duration float64, sampleRate int) int {
	return int(math.Round(duration * float64(sampleRate)))
}

func checkToneParams(freq, duration float64, sampleRate int) error {
	if freq <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidParameter, freq)
	}
	return checkTimeParams(duration, sampleRate)
}

func checkTimeParams(duration float64, sampleRate int) error {
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidParameter, duration)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}
	return nil
}

// Sine generates sin(2*pi*f*t) over the given duration.
func Sine(freq, duration float64, sampleRate int) ([]float64, error) {
	if err := checkToneParams(freq, duration, sampleRate); err != nil {
		return nil, err
	}
	n := NumSamples(duration, sampleRate)
	buf := make([]float64, n)
	w := 2 * math.Pi * freq / float64(sampleRate)
	for i := range buf {
		buf[i] = math.Sin(w * float64(i))
	}
	return buf, nil
}

// Sawtooth generates 2*(t*f - floor(0.5 + t*f)), rising from -1 toward 1
// over each period.
func Sawtooth(freq, duration float64, sampleRate int) ([]float64, error) {
	if err := checkToneParams(freq, duration, sampleRate); err != nil {
		return nil, err
	}
	n := NumSamples(duration, sampleRate)
	buf := make([]float64, n)
	for i := range buf {
		tf := float64(i) / float64(sampleRate) * freq
		buf[i] = 2 * (tf - math.Floor(0.5+tf))
	}
	return buf, nil
}

// Square generates sign(sin(2*pi*f*t)).
func Square(freq, duration float64, sampleRate int) ([]float64, error) {
	if err := checkToneParams(freq, duration, sampleRate); err != nil {
		return nil, err
	}
	n := NumSamples(duration, sampleRate)
	buf := make([]float64, n)
	w := 2 * math.Pi * freq / float64(sampleRate)
	for i := range buf {
		buf[i] = sign(math.Sin(w * float64(i)))
	}
	return buf, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// SweptSine generates a sine whose frequency glides exponentially from
// fStart to fEnd over the duration. Phase is the running sum of the
// instantaneous frequency divided by the sample rate; evaluating
// sin(2*pi*f(t)*t) directly would smear the sweep.
func SweptSine(fStart, fEnd, duration float64, sampleRate int) ([]float64, error) {
	if err := checkToneParams(fStart, duration, sampleRate); err != nil {
		return nil, err
	}
	if fEnd <= 0 {
		return nil, fmt.Errorf("%w: end frequency must be positive, got %g", ErrInvalidParameter, fEnd)
	}
	n := NumSamples(duration, sampleRate)
	buf := make([]float64, n)
	k := math.Log(fStart/fEnd) / duration
	phase := 0.0
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		freq := fStart * math.Exp(-t*k)
		phase += freq / float64(sampleRate)
		buf[i] = math.Sin(2 * math.Pi * phase)
	}
	return buf, nil
}

// VibratoSquare generates a square wave whose carrier frequency is
// modulated by a slow sine LFO, +/- the given depth in cents. Uses
// integrated phase like SweptSine.
func VibratoSquare(freq, cents, lfoHz, duration float64, sampleRate int) ([]float64, error) {
	if err := checkToneParams(freq, duration, sampleRate); err != nil {
		return nil, err
	}
	n := NumSamples(duration, sampleRate)
	buf := make([]float64, n)
	octaves := cents / 1200
	phase := 0.0
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		inst := freq * math.Pow(2, octaves*math.Sin(2*math.Pi*lfoHz*t))
		phase += inst / float64(sampleRate)
		buf[i] = sign(math.Sin(2 * math.Pi * phase))
	}
	return buf, nil
}

// DetunedSawStack sums three sawtooth oscillators per base frequency,
// detuned by -detuneHz, 0 and +detuneHz, and divides by the oscillator
// count. The chorusing between close frequencies is what makes pads
// sound wide.
func DetunedSawStack(freqs []float64, detuneHz, duration float64, sampleRate int) ([]float64, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: at least one frequency required", ErrInvalidParameter)
	}
	if err := checkTimeParams(duration, sampleRate); err != nil {
		return nil, err
	}
	n := NumSamples(duration, sampleRate)
	sum := make([]float64, n)
	for _, f := range freqs {
		for _, offset := range []float64{-detuneHz, 0, detuneHz} {
			saw, err := Sawtooth(f+offset, duration, sampleRate)
			if err != nil {
				return nil, err
			}
			vek.Add_Inplace(sum, saw)
		}
	}
	vek.MulNumber_Inplace(sum, 1/float64(3*len(freqs)))
	return sum, nil
}

// Noise fills a buffer with standard-normal white noise from rng.
func Noise(n int, rng *rand.Rand) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rng.NormFloat64()
	}
	return buf
}

// DiffNoise returns first-differenced white noise, a cheap high-pass
// approximation: h[0] = noise[0], h[i] = noise[i] - noise[i-1].
func DiffNoise(n int, rng *rand.Rand) []float64 {
	buf := Noise(n, rng)
	prev := 0.0
	for i := range buf {
		cur := buf[i]
		buf[i] = cur - prev
		prev = cur
	}
	return buf
}
