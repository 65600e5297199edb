package synth

import "github.com/viterin/vek"

// Peak returns the largest absolute sample value in buf, 0 for an empty buffer.
func Peak(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	return vek.Max(vek.Abs(buf))
}

// Normalize scales buf in place so its peak amplitude equals ceiling.
// Buffers with a peak below 1e-9 are left untouched to avoid dividing
// silence up to full scale.
func Normalize(buf []float64, ceiling float64) {
	peak := Peak(buf)
	if peak < 1e-9 {
		return
	}
	vek.MulNumber_Inplace(buf, ceiling/peak)
}

// Gain scales buf in place by a constant factor.
func Gain(buf []float64, factor float64) {
	if len(buf) == 0 {
		return
	}
	vek.MulNumber_Inplace(buf, factor)
}

// MixInto adds src scaled by gain into dst. When the lengths differ only
// the overlapping prefix is mixed.
func MixInto(dst, src []float64, gain float64) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return
	}
	scaled := vek.MulNumber(src[:n], gain)
	vek.Add_Inplace(dst[:n], scaled)
}
