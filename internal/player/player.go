// Package player auditions rendered clips through the system audio
// device. One oto context is created per process; clips play one at a
// time, blocking until finished.
package player

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays finite mono clips at a fixed sample rate.
type Player struct {
	ctx        *oto.Context
	sampleRate int
}

// New opens the audio device for mono 16-bit output.
func New(sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	return &Player{ctx: ctx, sampleRate: sampleRate}, nil
}

// Play blocks until the whole clip has been heard.
func (p *Player) Play(samples []float64) error {
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * 32767)
		pcm[i*2] = byte(v)
		pcm[i*2+1] = byte(v >> 8)
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}
