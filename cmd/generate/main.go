// Command generate renders every (instrument, section) clip of the
// song to WAV files in the configured output directory. With -play it
// also auditions each clip through the local audio device.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/apocalypseradio/trackforge/internal/config"
	"github.com/apocalypseradio/trackforge/internal/player"
	"github.com/apocalypseradio/trackforge/internal/song"
	"github.com/apocalypseradio/trackforge/internal/wavio"
)

func main() {
	play := flag.Bool("play", false, "audition each clip after rendering it")
	flag.Parse()

	cfg := config.Load()

	var audition *player.Player
	if *play {
		p, err := player.New(song.SampleRate)
		if err != nil {
			log.Fatalf("Audio device unavailable: %v", err)
		}
		audition = p
	}

	log.Printf("Generating tracks for Wasteland Frequencies (%d BPM, C minor)", song.BPM)

	for _, spec := range song.Specs() {
		samples, err := song.Render(spec)
		if err != nil {
			log.Fatalf("Render %s %s: %v", spec.Instrument, spec.Section.Name, err)
		}

		path := filepath.Join(cfg.OutputDir, spec.Filename())
		if err := wavio.WriteFile(path, samples, song.SampleRate); err != nil {
			log.Fatalf("Write %s: %v", path, err)
		}
		log.Printf("Saved %s (%d samples, %.2fs)", path, len(samples), wavio.Seconds(len(samples), song.SampleRate))

		if audition != nil {
			log.Printf("Playing %s...", spec.Filename())
			if err := audition.Play(samples); err != nil {
				log.Fatalf("Playback failed: %v", err)
			}
		}
	}

	log.Println("All tracks generated")
}
