package anim

import (
	"math"

	"github.com/vovakirdan/crystal-run/internal/core"
)

// Tail describes the segmented tail hanging behind the hip.
type Tail struct {
	Segments      int
	Amplitude     float64 // Lateral sway per segment index
	Height        float64 // Resting height of the tail line
	SegmentLength float64
}

// Sway returns segment positions while running. Each segment lags its
// parent by 2π/n of phase and sways more the further it is from the root;
// height stays fixed.
func (t Tail) Sway(phase float64) []core.Vec3 {
	out := make([]core.Vec3, t.Segments)
	n := float64(t.Segments)
	for i := range out {
		fi := float64(i)
		y := math.Sin(phase*math.Pi+fi*2*math.Pi/n) * (t.Amplitude * fi)
		out[i] = core.V3(-(fi+1)*t.SegmentLength, y, t.Height)
	}
	return out
}

// Whip returns segment positions while airborne. rise is the normalized
// vertical speed; the tail trails below the root while rising, lifts while
// falling and lies straight at the apex.
func (t Tail) Whip(rise float64) []core.Vec3 {
	out := make([]core.Vec3, t.Segments)
	n := float64(t.Segments)
	for i := range out {
		reach := float64(i+1) * t.SegmentLength
		angle := float64(i+1) / n * rise * math.Pi / 2
		out[i] = core.V3(-reach, 0, t.Height-math.Sin(angle)*reach)
	}
	return out
}
