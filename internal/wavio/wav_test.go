package wavio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"zero", 0, 0},
		{"full scale", 1.0, 32767},
		{"negative full scale", -1.0, -32767},
		{"half", 0.5, 16383},
		{"clipped high", 2.5, 32767},
		{"clipped low", -3.0, -32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Quantize([]float64{tt.in})
			if out[0] != tt.want {
				t.Errorf("Quantize(%v) = %d, want %d", tt.in, out[0], tt.want)
			}
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	samples := []float64{0, 0.5, -0.5, 1.0, -1.0, 0.25}
	path := filepath.Join(t.TempDir(), "clip.wav")

	if err := WriteFile(path, samples, 44100); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := int(dec.SampleRate); got != 44100 {
		t.Errorf("sample rate = %d, want 44100", got)
	}
	if dec.NumChans != 1 {
		t.Errorf("channels = %d, want 1", dec.NumChans)
	}
	if int(dec.BitDepth) != 16 {
		t.Errorf("bit depth = %d, want 16", dec.BitDepth)
	}
	want := Quantize(samples)
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "clip.wav"), []float64{0}, 44100)
	if err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(352800, 44100); got != 8.0 {
		t.Errorf("Seconds(352800, 44100) = %v, want 8.0", got)
	}
}
