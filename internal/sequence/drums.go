package sequence

import (
	"math/rand"

	"github.com/apocalypseradio/trackforge/internal/synth"
)

// Nominal drum hit lengths in seconds.
const (
	KickDuration      = 0.15
	SnareDuration     = 0.12
	ClosedHatDuration = 0.04
	OpenHatDuration   = 0.12
)

// Kit synthesizes percussion hits. The noise source is seeded so a kit
// produces identical hits across runs.
type Kit struct {
	SampleRate int
	rng        *rand.Rand
}

// NewKit creates a drum kit with a deterministic noise source.
func NewKit(sampleRate int, seed int64) *Kit {
	return &Kit{SampleRate: sampleRate, rng: rand.New(rand.NewSource(seed))}
}

// Kick is an exponential 150->50 Hz sine sweep with a fast amplitude
// decay, plus a 5 ms 1 kHz click layered underneath for attack
// definition.
func (k *Kit) Kick() []float64 {
	body, err := synth.SweptSine(150, 50, KickDuration, k.SampleRate)
	if err != nil {
		panic(err) // constant parameters, cannot fail
	}
	synth.ApplyEnvelope(body, synth.ExpDecay(len(body), 30, k.SampleRate))

	clickLen := synth.NumSamples(0.005, k.SampleRate)
	click, err := synth.Sine(1000, 0.005, k.SampleRate)
	if err != nil {
		panic(err)
	}
	synth.ApplyEnvelope(click, synth.ExpDecay(clickLen, 200, k.SampleRate))

	synth.Gain(body, 0.85)
	synth.MixInto(body, click, 0.15)
	return body
}

// Snare blends an exponentially decaying noise burst with a 200 Hz
// tonal component.
func (k *Kit) Snare() []float64 {
	n := synth.NumSamples(SnareDuration, k.SampleRate)
	noise := synth.Noise(n, k.rng)
	synth.ApplyEnvelope(noise, synth.ExpDecay(n, 40, k.SampleRate))

	tone, err := synth.Sine(200, SnareDuration, k.SampleRate)
	if err != nil {
		panic(err)
	}
	synth.ApplyEnvelope(tone, synth.ExpDecay(len(tone), 50, k.SampleRate))

	synth.Gain(noise, 0.6)
	synth.MixInto(noise, tone, 0.4)
	return noise
}

// ClosedHat is differentiated noise with a very fast decay.
func (k *Kit) ClosedHat() []float64 {
	n := synth.NumSamples(ClosedHatDuration, k.SampleRate)
	hat := synth.DiffNoise(n, k.rng)
	synth.ApplyEnvelope(hat, synth.ExpDecay(n, 100, k.SampleRate))
	return hat
}

// OpenHat is differentiated noise with a slower decay than ClosedHat.
func (k *Kit) OpenHat() []float64 {
	n := synth.NumSamples(OpenHatDuration, k.SampleRate)
	hat := synth.DiffNoise(n, k.rng)
	synth.ApplyEnvelope(hat, synth.ExpDecay(n, 20, k.SampleRate))
	return hat
}
