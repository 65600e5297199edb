package sequence

import (
	"math"
	"testing"

	"github.com/apocalypseradio/trackforge/internal/synth"
)

var testGrid = Grid{BPM: 120, SampleRate: 44100}

func TestBeatDuration(t *testing.T) {
	if d := testGrid.BeatDuration(); d != 0.5 {
		t.Errorf("BeatDuration = %v, want 0.5", d)
	}
}

func TestToSamples(t *testing.T) {
	tests := []struct {
		beat float64
		want int
	}{
		{0, 0},
		{1, 22050},
		{2, 44100},
		{3, 66150},
		{0.5, 11025},
		{0.25, 5513}, // 5512.5 rounds up
	}
	for _, tt := range tests {
		if got := testGrid.ToSamples(tt.beat); got != tt.want {
			t.Errorf("ToSamples(%v) = %d, want %d", tt.beat, got, tt.want)
		}
	}
}

func TestTrackSamples(t *testing.T) {
	// 16 beats at 120 BPM and 44100 Hz is exactly 352800 samples.
	if got := testGrid.TrackSamples(16); got != 352800 {
		t.Errorf("TrackSamples(16) = %d, want 352800", got)
	}
	if got := testGrid.TrackSamples(32); got != 705600 {
		t.Errorf("TrackSamples(32) = %d, want 705600", got)
	}
}

func TestPlaceAccumulates(t *testing.T) {
	track := make([]float64, 10)
	Place(track, []float64{1, 1, 1}, 2, 0.5)
	Place(track, []float64{1}, 3, 1)
	want := []float64{0, 0, 0.5, 1.5, 0.5, 0, 0, 0, 0, 0}
	for i := range want {
		if track[i] != want[i] {
			t.Errorf("track[%d] = %v, want %v", i, track[i], want[i])
		}
	}
}

func TestPlaceTruncatesOverflow(t *testing.T) {
	track := make([]float64, 5)
	Place(track, []float64{1, 1, 1, 1}, 3, 1)
	if len(track) != 5 {
		t.Fatalf("track grew to %d samples", len(track))
	}
	want := []float64{0, 0, 0, 1, 1}
	for i := range want {
		if track[i] != want[i] {
			t.Errorf("track[%d] = %v, want %v", i, track[i], want[i])
		}
	}
}

func TestPlaceBeyondEnd(t *testing.T) {
	track := make([]float64, 5)
	Place(track, []float64{1, 1}, 5, 1)
	Place(track, []float64{1, 1}, 100, 1)
	Place(track, []float64{1, 1}, -1, 1)
	for i, v := range track {
		if v != 0 {
			t.Errorf("track[%d] = %v, want 0", i, v)
		}
	}
}

func TestRenderStepsLength(t *testing.T) {
	steps := []Step{
		{Freqs: []float64{220}, Beat: 0, Beats: 1, Volume: 1},
		{Freqs: []float64{330}, Beat: 1, Beats: 1, Volume: 1},
	}
	voice := func(freq, duration, _ float64) ([]float64, error) {
		return synth.Sine(freq, duration, testGrid.SampleRate)
	}
	track, err := RenderSteps(testGrid, 4, steps, voice)
	if err != nil {
		t.Fatal(err)
	}
	if len(track) != testGrid.TrackSamples(4) {
		t.Errorf("track length = %d, want %d", len(track), testGrid.TrackSamples(4))
	}
	// Beats 2-4 hold no steps and must stay silent.
	if peak := synth.Peak(track[testGrid.ToSamples(2):]); peak != 0 {
		t.Errorf("unplaced region peak = %v, want 0", peak)
	}
}

func TestRenderStepsChordAveraging(t *testing.T) {
	// A chord voice returning constant 1.0 per note must average back
	// to 1.0 regardless of chord size.
	constVoice := func(_, duration, _ float64) ([]float64, error) {
		n := synth.NumSamples(duration, testGrid.SampleRate)
		buf := make([]float64, n)
		for i := range buf {
			buf[i] = 1
		}
		return buf, nil
	}
	steps := []Step{{Freqs: []float64{100, 200, 300}, Beat: 0, Beats: 1, Volume: 1}}
	track, err := RenderSteps(testGrid, 1, steps, constVoice)
	if err != nil {
		t.Fatal(err)
	}
	if diff := math.Abs(track[100] - 1); diff > 1e-12 {
		t.Errorf("chord sample = %v, want 1", track[100])
	}
}

func TestRenderStepsOverflowTruncated(t *testing.T) {
	// A step running past the end of the track truncates instead of
	// faulting or growing the buffer.
	steps := []Step{{Freqs: []float64{220}, Beat: 3, Beats: 4, Volume: 1}}
	voice := func(freq, duration, _ float64) ([]float64, error) {
		return synth.Sine(freq, duration, testGrid.SampleRate)
	}
	track, err := RenderSteps(testGrid, 4, steps, voice)
	if err != nil {
		t.Fatal(err)
	}
	if len(track) != testGrid.TrackSamples(4) {
		t.Errorf("track length = %d, want %d", len(track), testGrid.TrackSamples(4))
	}
}

func TestRenderStepsEmptyStep(t *testing.T) {
	steps := []Step{{Beat: 0, Beats: 1, Volume: 1}}
	voice := func(freq, duration, _ float64) ([]float64, error) {
		return synth.Sine(freq, duration, testGrid.SampleRate)
	}
	if _, err := RenderSteps(testGrid, 4, steps, voice); err == nil {
		t.Error("expected error for step without frequencies")
	}
}
