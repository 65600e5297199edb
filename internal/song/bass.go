package song

import (
	"fmt"

	"github.com/apocalypseradio/trackforge/internal/sequence"
	"github.com/apocalypseradio/trackforge/internal/synth"
)

func renderBass(grid sequence.Grid, tuning Tuning, section Section) ([]float64, error) {
	switch section.Name {
	case "intro":
		return bassIntro(grid, tuning)
	case "verse":
		return bassVerse(grid, tuning)
	case "chorus":
		return bassChorus(grid, tuning)
	case "outro":
		return bassOutro(grid, tuning)
	}
	return nil, fmt.Errorf("unknown section %q", section.Name)
}

// bassVoice renders one saw bass note: sawtooth thickened by a sub sine
// one octave down, low-passed, ADSR-shaped and normalized to the note
// volume.
func bassVoice(grid sequence.Grid, volume float64) sequence.Voice {
	return func(freq, duration, cutoff float64) ([]float64, error) {
		wave, err := synth.Sawtooth(freq, duration, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		sub, err := synth.Sine(freq/2, duration, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		synth.Gain(wave, 0.7)
		synth.MixInto(wave, sub, 0.3)

		wave, err = synth.LowPass(wave, cutoff, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		env, err := synth.ADSR(len(wave), 0.01, 0.05, 0.7, 0.1, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		synth.ApplyEnvelope(wave, env)
		synth.Normalize(wave, volume)
		return wave, nil
	}
}

// bassIntro is a barely-there sine drone on C2: gentle 200 Hz filter,
// two seconds of fade-in, the last second easing down to 0.8.
func bassIntro(grid sequence.Grid, tuning Tuning) ([]float64, error) {
	duration := 16 * grid.BeatDuration()
	wave, err := synth.Sine(tuning["C2"], duration, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	wave, err = synth.LowPass(wave, 200, grid.SampleRate)
	if err != nil {
		return nil, err
	}

	n := len(wave)
	env := make([]float64, n)
	for i := range env {
		env[i] = 1
	}
	fadeIn := synth.NumSamples(2.0, grid.SampleRate)
	copy(env[:fadeIn], synth.Line(0, 1, fadeIn))
	fadeOut := synth.NumSamples(1.0, grid.SampleRate)
	copy(env[n-fadeOut:], synth.Line(1, 0.8, fadeOut))

	synth.ApplyEnvelope(wave, env)
	synth.Gain(wave, 0.25)
	return wave, nil
}

// bassVerse repeats the C2-C2-Eb2-F2 figure one beat per note, then
// rounds the whole track off with an 800 Hz pass for warmth.
func bassVerse(grid sequence.Grid, tuning Tuning) ([]float64, error) {
	pattern := []string{"C2", "C2", "Eb2", "F2"}
	const totalBeats = 32

	steps := make([]sequence.Step, 0, totalBeats)
	for beat := 0; beat < totalBeats; beat++ {
		steps = append(steps, sequence.Step{
			Freqs:  []float64{tuning[pattern[beat%len(pattern)]]},
			Beat:   float64(beat),
			Beats:  1,
			Cutoff: 500,
			Volume: 1,
		})
	}

	track, err := sequence.RenderSteps(grid, totalBeats, steps, bassVoice(grid, 0.8))
	if err != nil {
		return nil, err
	}
	track, err = synth.LowPass(track, 800, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	synth.Normalize(track, 0.8)
	return track, nil
}

// bassChorus arpeggiates C2-G2-Ab2-F2-Eb2-F2-G2-C3 while the filter
// cutoff opens from 400 Hz to 900 Hz across the section.
func bassChorus(grid sequence.Grid, tuning Tuning) ([]float64, error) {
	pattern := []string{"C2", "G2", "Ab2", "F2", "Eb2", "F2", "G2", "C3"}
	const totalBeats = 32

	steps := make([]sequence.Step, 0, totalBeats)
	for beat := 0; beat < totalBeats; beat++ {
		progress := float64(beat) / float64(totalBeats)
		steps = append(steps, sequence.Step{
			Freqs:  []float64{tuning[pattern[beat%len(pattern)]]},
			Beat:   float64(beat),
			Beats:  1,
			Cutoff: 400 + progress*500,
			Volume: 1,
		})
	}

	track, err := sequence.RenderSteps(grid, totalBeats, steps, bassVoice(grid, 0.85))
	if err != nil {
		return nil, err
	}
	synth.Normalize(track, 0.85)
	return track, nil
}

// bassOutro sustains a C2 saw with a strong sub layer and fades the
// whole section out linearly.
func bassOutro(grid sequence.Grid, tuning Tuning) ([]float64, error) {
	duration := 16 * grid.BeatDuration()
	wave, err := synth.Sawtooth(tuning["C2"], duration, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	sub, err := synth.Sine(tuning["C2"], duration, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	synth.Gain(wave, 0.6)
	synth.MixInto(wave, sub, 0.4)

	wave, err = synth.LowPass(wave, 500, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	synth.ApplyEnvelope(wave, synth.Line(0.8, 0, len(wave)))
	synth.Normalize(wave, 0.7)
	return wave, nil
}
