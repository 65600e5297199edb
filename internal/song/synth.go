package song

import (
	"fmt"

	"github.com/apocalypseradio/trackforge/internal/sequence"
	"github.com/apocalypseradio/trackforge/internal/synth"
)

func renderSynth(grid sequence.Grid, tuning Tuning, section Section) ([]float64, error) {
	switch section.Name {
	case "intro":
		return synthPad(grid, tuning, padParams{
			beats:      16,
			attack:     2.0,
			decayTime:  0.5,
			sustain:    0.8,
			release:    2.0,
			lfoHz:      0.2,
			cutoffBase: 800,
			cutoffSpan: 1700,
		})
	case "verse":
		return synthVerse(grid, tuning)
	case "chorus":
		return synthChorus(grid, tuning)
	case "outro":
		return synthPad(grid, tuning, padParams{
			beats:      16,
			attack:     0.5,
			decayTime:  0.5,
			sustain:    0.7,
			release:    5.0,
			lfoHz:      0.15,
			cutoffBase: 600,
			cutoffSpan: 1400,
			fadeOut:    true,
		})
	}
	return nil, fmt.Errorf("unknown section %q", section.Name)
}

// padParams describes one atmospheric pad section: the intro and outro
// share the Cm voicing and differ only in envelope, sweep and fade.
type padParams struct {
	beats                               float64
	attack, decayTime, sustain, release float64
	lfoHz                               float64
	cutoffBase, cutoffSpan              float64
	fadeOut                             bool
}

// synthPad layers three detuned saws per chord tone and sweeps a
// low-pass cutoff with a slow LFO, filtering in 100 ms chunks primed
// with a 1000-sample lookback.
func synthPad(grid sequence.Grid, tuning Tuning, p padParams) ([]float64, error) {
	duration := p.beats * grid.BeatDuration()
	chord := []float64{tuning["C4"], tuning["Eb4"], tuning["G4"]}

	pad, err := synth.DetunedSawStack(chord, 3.0, duration, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	env, err := synth.ADSR(len(pad), p.attack, p.decayTime, p.sustain, p.release, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	synth.ApplyEnvelope(pad, env)
	if p.fadeOut {
		synth.ApplyEnvelope(pad, synth.Line(1, 0, len(pad)))
	}

	filtered, err := synth.SweepLowPass(pad, grid.SampleRate, grid.SampleRate/10, 1000, func(sample int) float64 {
		return p.cutoffBase + p.cutoffSpan*synth.SineLFO(p.lfoHz, sample, grid.SampleRate)
	})
	if err != nil {
		return nil, err
	}
	synth.Normalize(filtered, 0.7)
	return filtered, nil
}

// synthVerse arpeggiates C4-Eb4-G4-C5 on eighth notes with a plucky
// envelope, brightened by a single 3 kHz pass over the whole track.
func synthVerse(grid sequence.Grid, tuning Tuning) ([]float64, error) {
	arp := []string{"C4", "Eb4", "G4", "C5"}
	const totalBeats = 32
	numEighths := totalBeats * 2

	steps := make([]sequence.Step, 0, numEighths)
	for i := 0; i < numEighths; i++ {
		steps = append(steps, sequence.Step{
			Freqs:  []float64{tuning[arp[i%len(arp)]]},
			Beat:   float64(i) * 0.5,
			Beats:  0.5,
			Volume: 1,
		})
	}

	pluck := func(freq, duration, _ float64) ([]float64, error) {
		note, err := synth.Sawtooth(freq, duration, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		env, err := synth.ADSR(len(note), 0.005, 0.1, 0.3, 0.05, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		synth.ApplyEnvelope(note, env)
		return note, nil
	}

	track, err := sequence.RenderSteps(grid, totalBeats, steps, pluck)
	if err != nil {
		return nil, err
	}
	track, err = synth.LowPass(track, 3000, grid.SampleRate)
	if err != nil {
		return nil, err
	}
	synth.Normalize(track, 0.7)
	return track, nil
}

// synthChorus stacks two layers: saw chord stabs over the Cm-Ab-Eb-Bb
// progression and a square lead with 5 Hz vibrato, mixed 0.6/0.4.
func synthChorus(grid sequence.Grid, tuning Tuning) ([]float64, error) {
	const totalBeats = 32

	chords := [][]string{
		{"C4", "Eb4", "G4"},  // Cm
		{"Ab3", "C4", "Eb4"}, // Ab
		{"Eb3", "G4", "Bb4"}, // Eb
		{"Bb3", "D4", "F4"},  // Bb
	}
	numChords := totalBeats / 2
	stabSteps := make([]sequence.Step, 0, numChords)
	for i := 0; i < numChords; i++ {
		names := chords[i%len(chords)]
		freqs := make([]float64, len(names))
		for j, name := range names {
			freqs[j] = tuning[name]
		}
		stabSteps = append(stabSteps, sequence.Step{
			Freqs:  freqs,
			Beat:   float64(i) * 2,
			Beats:  2,
			Volume: 1,
		})
	}

	stabVoice := func(freq, duration, _ float64) ([]float64, error) {
		note, err := synth.Sawtooth(freq, duration, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		env, err := synth.ADSR(len(note), 0.05, 0.15, 0.7, 0.1, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		synth.ApplyEnvelope(note, env)
		return note, nil
	}

	stabs, err := sequence.RenderSteps(grid, totalBeats, stabSteps, stabVoice)
	if err != nil {
		return nil, err
	}
	stabs, err = synth.LowPass(stabs, 2500, grid.SampleRate)
	if err != nil {
		return nil, err
	}

	melody := []string{"Bb4", "C5", "Eb5", "G4"}
	numLead := totalBeats / 2
	leadSteps := make([]sequence.Step, 0, numLead)
	for i := 0; i < numLead; i++ {
		leadSteps = append(leadSteps, sequence.Step{
			Freqs:  []float64{tuning[melody[i%len(melody)]]},
			Beat:   float64(i) * 2,
			Beats:  2,
			Volume: 1,
		})
	}

	leadVoice := func(freq, duration, _ float64) ([]float64, error) {
		note, err := synth.VibratoSquare(freq, 10, 5, duration, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		env, err := synth.ADSR(len(note), 0.02, 0.1, 0.6, 0.15, grid.SampleRate)
		if err != nil {
			return nil, err
		}
		synth.ApplyEnvelope(note, env)
		return note, nil
	}

	lead, err := sequence.RenderSteps(grid, totalBeats, leadSteps, leadVoice)
	if err != nil {
		return nil, err
	}
	lead, err = synth.LowPass(lead, 4000, grid.SampleRate)
	if err != nil {
		return nil, err
	}

	synth.Gain(stabs, 0.6)
	synth.MixInto(stabs, lead, 0.4)
	synth.Normalize(stabs, 0.7)
	return stabs, nil
}
