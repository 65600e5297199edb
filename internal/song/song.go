// Package song holds the fixed musical material of "Wasteland
// Frequencies" -- tempo, tunings, section layout and the per-section
// builders for each instrument. Everything musical is expressed as
// plain data handed explicitly into the composer; the synthesis
// packages below carry no song knowledge.
package song

import (
	"fmt"

	"github.com/apocalypseradio/trackforge/internal/sequence"
)

const (
	BPM        = 120
	SampleRate = 44100
)

// Instrument tags used in filenames and submissions.
const (
	InstrumentBass  = "bass"
	InstrumentDrums = "drums"
	InstrumentSynth = "synth"
)

// Section is one fixed part of the song arrangement.
type Section struct {
	ID    string // remote section identifier
	Name  string
	Beats float64
}

// Sections returns the song arrangement: intro and outro run 16 beats
// (8 s at 120 BPM), verse and chorus 32 beats (16 s).
func Sections() []Section {
	return []Section{
		{ID: "cmlg5vs6j0008ql01ukedpj5f", Name: "intro", Beats: 16},
		{ID: "cmlg5vs6j0009ql01we6kfa07", Name: "verse", Beats: 32},
		{ID: "cmlg5vs6j000aql01cvfpbjyj", Name: "chorus", Beats: 32},
		{ID: "cmlg5vs6j000bql01mnvvbd4s", Name: "outro", Beats: 16},
	}
}

// Grid returns the song's beat grid.
func Grid() sequence.Grid {
	return sequence.Grid{BPM: BPM, SampleRate: SampleRate}
}

// Tuning maps note names to frequencies in Hz.
type Tuning map[string]float64

// BassTuning covers the C minor bass octave, C2 through C3.
func BassTuning() Tuning {
	return Tuning{
		"C2":  65.41,
		"D2":  73.42,
		"Eb2": 77.78,
		"F2":  87.31,
		"G2":  98.00,
		"Ab2": 103.83,
		"Bb2": 116.54,
		"C3":  130.81,
	}
}

// SynthTuning covers the mid and lead registers used by the pads,
// arpeggios, stabs and melody.
func SynthTuning() Tuning {
	return Tuning{
		"Eb3": 155.56,
		"Ab3": 207.65,
		"Bb3": 233.08,
		"C4":  261.63,
		"D4":  293.66,
		"Eb4": 311.13,
		"F4":  349.23,
		"G4":  392.00,
		"Ab4": 415.30,
		"Bb4": 466.16,
		"C5":  523.25,
		"Eb5": 622.25,
		"G5":  783.99,
	}
}

// ClipSpec identifies one renderable (instrument, section) clip and its
// human-readable description for submission.
type ClipSpec struct {
	Instrument  string
	Section     Section
	Description string
}

// Filename is the flat WAV file name for the clip.
func (c ClipSpec) Filename() string {
	return fmt.Sprintf("%s_%s.wav", c.Instrument, c.Section.Name)
}

// Specs lists every clip the song needs, in render order.
func Specs() []ClipSpec {
	sections := Sections()
	intro, verse, chorus, outro := sections[0], sections[1], sections[2], sections[3]
	return []ClipSpec{
		{InstrumentBass, intro, "Subtle sub bass drone on C2 with slow fade-in, setting the dark atmosphere"},
		{InstrumentBass, verse, "Driving synthwave saw bass pattern C2-C2-Eb2-F2 with low-pass filter, one beat per note"},
		{InstrumentBass, chorus, "Full saw bass arpeggio C2-G2-Ab2-F2-Eb2-F2-G2-C3 with filter sweep from 400-900Hz"},
		{InstrumentBass, outro, "Sustained C2 saw bass with sub-sine layer, fading out over 8 seconds"},
		{InstrumentDrums, intro, "Light hi-hats building atmosphere, starting soft and gradually increasing in volume with occasional open hats in the second half"},
		{InstrumentDrums, verse, "Classic electronic beat with kick on 1 and 3, snare on 2 and 4, closed hi-hats on eighth notes"},
		{InstrumentDrums, chorus, "Energetic four-on-the-floor kick pattern with snare on 2 and 4, open hi-hats on off-beats, snare fills every 4th bar"},
		{InstrumentDrums, outro, "Gradually fading drum pattern, elements dropping out progressively as the track winds down"},
		{InstrumentSynth, intro, "Atmospheric Cm pad with detuned saw oscillators, slow 2-second attack, LFO-modulated filter sweep for movement"},
		{InstrumentSynth, verse, "Plucky arpeggiated synth: C4-Eb4-G4-C5 pattern at 8th note speed, bright saw tone with fast attack/decay"},
		{InstrumentSynth, chorus, "Full chord stabs (Cm-Ab-Eb-Bb progression) with square wave lead melody (Bb4-C5-Eb5-G4 motif) and vibrato"},
		{InstrumentSynth, outro, "Atmospheric Cm pad fading to silence, detuned saw oscillators with LFO filter modulation"},
	}
}

// Render builds the sample buffer for one clip.
func Render(spec ClipSpec) ([]float64, error) {
	grid := Grid()
	switch spec.Instrument {
	case InstrumentBass:
		return renderBass(grid, BassTuning(), spec.Section)
	case InstrumentDrums:
		return renderDrums(grid, spec.Section)
	case InstrumentSynth:
		return renderSynth(grid, SynthTuning(), spec.Section)
	}
	return nil, fmt.Errorf("unknown instrument %q", spec.Instrument)
}
