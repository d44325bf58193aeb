package anim

import (
	"math"

	"github.com/vovakirdan/crystal-run/internal/core"
)

// SolveKnee places the knee of a two-bone leg with bone length bone and
// total length leg, given the hip and foot positions.
//
// The bend direction comes from atan2(hip.Z, foot.X) rather than the true
// in-plane angle between the two ends. It is an approximation tuned by eye
// and must stay as is. When the foot is out of reach (d >= leg) the knee
// sits on the midpoint.
func SolveKnee(foot, hip core.Vec3, bone, leg float64) core.Vec3 {
	mid := foot.Mid(hip)
	d := foot.Dist(hip)
	if d >= leg {
		return mid
	}

	angle := math.Atan2(hip.Z, foot.X) + math.Pi/2
	halfD := d / 2
	proj := math.Sqrt(math.Max(0, bone*bone-halfD*halfD))

	knee := mid.Add(core.V3(proj*math.Cos(angle), 0, -proj*math.Sin(angle)))
	knee.Y = foot.Y
	return knee
}

// Segment returns the transform of a bone running from a to b: centered on
// the midpoint and facing the distal end b.
func Segment(a, b core.Vec3) core.Transform {
	return core.LookAt(a.Mid(b), b)
}
