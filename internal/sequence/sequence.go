// Package sequence turns beat-timed note and drum patterns into sample
// buffers. It owns the beat grid (tempo to sample-offset conversion),
// the additive placement of rendered sounds into a track, and the
// percussion voices.
package sequence

import (
	"fmt"
	"math"

	"github.com/apocalypseradio/trackforge/internal/synth"
)

// Grid converts between musical time (beats) and sample positions.
type Grid struct {
	BPM        float64
	SampleRate int
}

// BeatDuration returns the length of one beat in seconds.
func (g Grid) BeatDuration() float64 {
	return 60.0 / g.BPM
}

// ToSamples returns the sample offset of a beat position.
func (g Grid) ToSamples(beat float64) int {
	return int(math.Round(beat * g.BeatDuration() * float64(g.SampleRate)))
}

// TrackSamples returns the buffer length for a span of beats.
func (g Grid) TrackSamples(beats float64) int {
	return int(math.Round(beats * g.BeatDuration() * float64(g.SampleRate)))
}

// Place mixes sound into track at the given sample offset, scaled by
// gain. A sound running past the end of the track is truncated; a
// placement at or beyond the end is dropped. The track never grows.
func Place(track, sound []float64, start int, gain float64) {
	if start >= len(track) || start < 0 {
		return
	}
	synth.MixInto(track[start:], sound, gain)
}

// Voice renders one note of a given frequency and duration through an
// instrument-specific oscillator/envelope/filter chain. A cutoff of 0
// means the voice's default.
type Voice func(freq, duration, cutoff float64) ([]float64, error)

// Step is one entry of a beat-timed pattern. Freqs holds one frequency
// for a note, several for a chord.
type Step struct {
	Freqs  []float64
	Beat   float64 // start position in beats from track start
	Beats  float64 // duration in beats
	Cutoff float64 // per-step filter cutoff in Hz, 0 = voice default
	Volume float64
}

// RenderSteps renders each step through voice and accumulates the
// results into a track of totalBeats length. Chords average the
// per-frequency renders before placement.
func RenderSteps(grid Grid, totalBeats float64, steps []Step, voice Voice) ([]float64, error) {
	track := make([]float64, grid.TrackSamples(totalBeats))
	for _, step := range steps {
		if len(step.Freqs) == 0 {
			return nil, fmt.Errorf("%w: step at beat %g has no frequencies", synth.ErrInvalidParameter, step.Beat)
		}
		duration := step.Beats * grid.BeatDuration()

		var sound []float64
		for _, freq := range step.Freqs {
			note, err := voice(freq, duration, step.Cutoff)
			if err != nil {
				return nil, fmt.Errorf("render step at beat %g: %w", step.Beat, err)
			}
			if sound == nil {
				sound = make([]float64, len(note))
			}
			synth.MixInto(sound, note, 1)
		}
		if len(step.Freqs) > 1 {
			synth.Gain(sound, 1/float64(len(step.Freqs)))
		}

		Place(track, sound, grid.ToSamples(step.Beat), step.Volume)
	}
	return track, nil
}
