// Command submit uploads previously generated WAV clips to the
// Apocalypse Radio service, one GraphQL mutation per clip. Failures are
// reported per clip and do not stop the remaining uploads; the process
// exits non-zero if any submission failed.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/apocalypseradio/trackforge/internal/config"
	"github.com/apocalypseradio/trackforge/internal/radio"
	"github.com/apocalypseradio/trackforge/internal/song"
)

func main() {
	cfg := config.Load()
	if cfg.AuthToken == "" {
		log.Fatal("AUTH_TOKEN not set")
	}

	client := radio.NewClient(cfg.APIURL, cfg.AuthToken)
	ctx := context.Background()

	specs := song.Specs()
	succeeded := 0
	for _, spec := range specs {
		path := filepath.Join(cfg.OutputDir, spec.Filename())
		audio, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Skipping %s: %v", spec.Filename(), err)
			continue
		}

		log.Printf("Submitting %s (%d bytes)...", spec.Filename(), len(audio))
		track, err := client.SubmitTrack(ctx, radio.Submission{
			SectionID:   spec.Section.ID,
			Instrument:  spec.Instrument,
			Filename:    spec.Filename(),
			Description: spec.Description,
			Audio:       audio,
		})
		if err != nil {
			log.Printf("  FAILED: %v", err)
			continue
		}
		log.Printf("  OK: track %s (%s)", track.ID, track.Status)
		succeeded++
	}

	log.Printf("Submitted %d/%d tracks", succeeded, len(specs))
	if succeeded < len(specs) {
		os.Exit(1)
	}
}
