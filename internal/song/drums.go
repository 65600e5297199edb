package song

import (
	"fmt"

	"github.com/apocalypseradio/trackforge/internal/sequence"
	"github.com/apocalypseradio/trackforge/internal/synth"
)

// drumSeed keeps regenerated assets identical between runs.
const drumSeed = 0x57464d // "WFM"

func renderDrums(grid sequence.Grid, section Section) ([]float64, error) {
	kit := sequence.NewKit(grid.SampleRate, drumSeed)
	var track []float64
	switch section.Name {
	case "intro":
		track = drumsIntro(grid, kit)
	case "verse":
		track = drumsVerse(grid, kit)
	case "chorus":
		track = drumsChorus(grid, kit)
	case "outro":
		track = drumsOutro(grid, kit)
	default:
		return nil, fmt.Errorf("unknown section %q", section.Name)
	}
	synth.Normalize(track, 0.9)
	return track, nil
}

// drumsIntro builds atmosphere with hats alone: eighth notes swelling
// from 0.15 to 0.6, opening up every fourth eighth in the back half.
func drumsIntro(grid sequence.Grid, kit *sequence.Kit) []float64 {
	const numBeats = 16
	track := make([]float64, grid.TrackSamples(numBeats))

	totalEighths := numBeats * 2
	for i := 0; i < totalEighths; i++ {
		beat := float64(i) * 0.5
		vol := 0.15 + 0.45*float64(i)/float64(totalEighths)
		if i%4 == 0 && i > totalEighths/2 {
			sequence.Place(track, kit.OpenHat(), grid.ToSamples(beat), vol)
		} else {
			sequence.Place(track, kit.ClosedHat(), grid.ToSamples(beat), vol)
		}
	}
	return track
}

// drumsVerse is the classic electronic backbeat: kick on 1 and 3,
// snare on 2 and 4, closed hats on eighths.
func drumsVerse(grid sequence.Grid, kit *sequence.Kit) []float64 {
	const numBeats = 32
	track := make([]float64, grid.TrackSamples(numBeats))

	for bar := 0; bar < numBeats/4; bar++ {
		barOffset := float64(bar * 4)
		sequence.Place(track, kit.Kick(), grid.ToSamples(barOffset), 0.9)
		sequence.Place(track, kit.Kick(), grid.ToSamples(barOffset+2), 0.85)
		sequence.Place(track, kit.Snare(), grid.ToSamples(barOffset+1), 0.75)
		sequence.Place(track, kit.Snare(), grid.ToSamples(barOffset+3), 0.75)
		for eighth := 0; eighth < 8; eighth++ {
			beat := barOffset + float64(eighth)*0.5
			sequence.Place(track, kit.ClosedHat(), grid.ToSamples(beat), 0.45)
		}
	}
	return track
}

// drumsChorus drives four-on-the-floor with open hats on the off-beats
// and a rising snare roll on the last beat of every fourth bar.
func drumsChorus(grid sequence.Grid, kit *sequence.Kit) []float64 {
	const numBeats = 32
	track := make([]float64, grid.TrackSamples(numBeats))

	for bar := 0; bar < numBeats/4; bar++ {
		barOffset := float64(bar * 4)
		for beat := 0; beat < 4; beat++ {
			sequence.Place(track, kit.Kick(), grid.ToSamples(barOffset+float64(beat)), 0.95)
		}
		sequence.Place(track, kit.Snare(), grid.ToSamples(barOffset+1), 0.85)
		sequence.Place(track, kit.Snare(), grid.ToSamples(barOffset+3), 0.85)
		for eighth := 0; eighth < 8; eighth++ {
			beat := barOffset + float64(eighth)*0.5
			if eighth%2 == 1 {
				sequence.Place(track, kit.OpenHat(), grid.ToSamples(beat), 0.55)
			} else {
				sequence.Place(track, kit.ClosedHat(), grid.ToSamples(beat), 0.5)
			}
		}

		if (bar+1)%4 == 0 {
			for sixteenth := 0; sixteenth < 4; sixteenth++ {
				fillBeat := barOffset + 3 + float64(sixteenth)*0.25
				sequence.Place(track, kit.Snare(), grid.ToSamples(fillBeat), 0.7+float64(sixteenth)*0.05)
			}
		}
	}
	return track
}

// drumsOutro fades the verse pattern bar by bar, dropping the second
// kick in the last bar and the second snare in the last two, with the
// hats tapering further within each bar.
func drumsOutro(grid sequence.Grid, kit *sequence.Kit) []float64 {
	const numBeats = 16
	track := make([]float64, grid.TrackSamples(numBeats))

	bars := numBeats / 4
	for bar := 0; bar < bars; bar++ {
		barOffset := float64(bar * 4)
		fade := 1.0 - float64(bar)/float64(bars)*0.85

		sequence.Place(track, kit.Kick(), grid.ToSamples(barOffset), 0.9*fade)
		if bar < 3 {
			sequence.Place(track, kit.Kick(), grid.ToSamples(barOffset+2), 0.8*fade)
		}
		sequence.Place(track, kit.Snare(), grid.ToSamples(barOffset+1), 0.7*fade)
		if bar < 2 {
			sequence.Place(track, kit.Snare(), grid.ToSamples(barOffset+3), 0.7*fade)
		}
		for eighth := 0; eighth < 8; eighth++ {
			beat := barOffset + float64(eighth)*0.5
			hatFade := fade * (1.0 - float64(eighth)/8*0.3)
			sequence.Place(track, kit.ClosedHat(), grid.ToSamples(beat), 0.4*hatFade)
		}
	}
	return track
}
