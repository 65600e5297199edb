// Package wavio is the single output boundary of the renderer: it
// clips, quantizes and writes finished float64 tracks as mono 16-bit
// PCM WAV files.
package wavio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// Quantize clips samples to [-1,1] and scales them to int16 range.
func Quantize(samples []float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		out[i] = int(s * 32767)
	}
	return out
}

// WriteFile writes samples as a single-channel 16-bit PCM WAV file.
func WriteFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           Quantize(samples),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return nil
}

// Seconds reports the duration of a sample count at a sample rate.
func Seconds(numSamples, sampleRate int) float64 {
	return float64(numSamples) / float64(sampleRate)
}
