package synth

import (
	"fmt"
	"math"
)

// Line writes a linear ramp from start to end across n samples,
// endpoint inclusive: a single sample holds start, two samples hold
// start and end, longer ramps step by (end-start)/(n-1).
func Line(start, end float64, n int) []float64 {
	buf := make([]float64, n)
	fillLine(buf, start, end)
	return buf
}

func fillLine(buf []float64, start, end float64) {
	n := len(buf)
	if n == 0 {
		return
	}
	if n == 1 {
		buf[0] = start
		return
	}
	step := (end - start) / float64(n-1)
	for i := range buf {
		buf[i] = start + step*float64(i)
	}
	// Pin the endpoint: accumulated rounding must not leave a ramp
	// ending a hair away from its target value.
	buf[n-1] = end
}

// ADSR builds an attack-decay-sustain-release amplitude envelope of
// exactly total samples. Attack, decay and release are in seconds;
// sustain fills whatever remains. When the three timed phases do not
// fit in the buffer the envelope degrades to a symmetric rise and fall
// split at the buffer midpoint, the first total/2 samples ramping 0->1
// and the remainder ramping 1->0.
func ADSR(total int, attack, decay, sustainLevel, release float64, sampleRate int) ([]float64, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: envelope length must be positive, got %d", ErrInvalidParameter, total)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}
	if attack < 0 || decay < 0 || release < 0 {
		return nil, fmt.Errorf("%w: envelope phases must be non-negative", ErrInvalidParameter)
	}
	if sustainLevel < 0 || sustainLevel > 1 {
		return nil, fmt.Errorf("%w: sustain level must be in [0,1], got %g", ErrInvalidParameter, sustainLevel)
	}

	env := make([]float64, total)
	aSamples := int(attack * float64(sampleRate))
	dSamples := int(decay * float64(sampleRate))
	rSamples := int(release * float64(sampleRate))
	sSamples := total - aSamples - dSamples - rSamples

	if sSamples < 0 {
		// Short note: rise then fall around the midpoint.
		half := total / 2
		fillLine(env[:half], 0, 1)
		fillLine(env[half:], 1, 0)
		return env, nil
	}

	idx := 0
	fillLine(env[idx:idx+aSamples], 0, 1)
	idx += aSamples
	fillLine(env[idx:idx+dSamples], 1, sustainLevel)
	idx += dSamples
	for i := idx; i < idx+sSamples; i++ {
		env[i] = sustainLevel
	}
	idx += sSamples
	fillLine(env[idx:], sustainLevel, 0)
	return env, nil
}

// ExpDecay builds an exp(-t*rate) envelope over n samples. Drum voices
// use it for their percussive falloff.
func ExpDecay(n int, ratePerSecond float64, sampleRate int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		buf[i] = math.Exp(-t * ratePerSecond)
	}
	return buf
}

// ApplyEnvelope multiplies signal by env element-wise, in place on
// signal. The shorter length wins.
func ApplyEnvelope(signal, env []float64) {
	n := len(signal)
	if len(env) < n {
		n = len(env)
	}
	for i := 0; i < n; i++ {
		signal[i] *= env[i]
	}
}
