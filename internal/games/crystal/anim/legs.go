package anim

import (
	"math"

	"github.com/vovakirdan/crystal-run/internal/core"
)

// Legs holds the rig dimensions that shape the walk cycle.
type Legs struct {
	LegLength  float64 // Hip to foot when fully extended
	HalfStride float64 // Swing distance D
	StepHeight float64 // Peak foot lift H
	HipSplay   float64 // Lateral distance between the two hips
	HipForward float64 // Forward offset of the hip over the feet
	FootSpread float64 // Lateral distance between the two feet
	TuckHeight float64 // Foot lift at launch in the jump pose
}

// LegPose is one leg's joint positions in the player's local frame.
type LegPose struct {
	Hip  core.Vec3
	Knee core.Vec3
	Foot core.Vec3
}

// Pose is the lower body at one instant.
type Pose struct {
	Hip   core.Vec3 // Pelvis center
	Left  LegPose
	Right LegPose
}

// Bob is the hip bob amplitude B.
func (l Legs) Bob() float64 {
	return 0.2 * l.HalfStride
}

// BaseHeight is the lowest hip height during the walk cycle.
func (l Legs) BaseHeight() float64 {
	return 0.9*l.LegLength - 1.2*l.Bob()
}

// FootPosition returns the foot position for sub-phase t in [0, 2).
// Swing (t < 1) arcs forward from -d to d peaking at height h; stance
// slides back linearly from d to -d on the ground.
func FootPosition(t, d, h, y float64) core.Vec3 {
	if t < 1 {
		return core.V3(-d*math.Cos(math.Pi*t), y, h*math.Sin(math.Pi*t))
	}
	return core.V3(d-2*d*(t-1), y, 0)
}

// HipPosition returns the pelvis center for continuous phase t. The hip
// bobs twice per stride regardless of which foot is swinging.
func (l Legs) HipPosition(t float64) core.Vec3 {
	z := l.BaseHeight() + l.Bob()*math.Abs(math.Sin(math.Pi*core.WrapF(t, 1)))
	return core.V3(l.HipForward, 0, z)
}

// Walk returns the walking pose for the given phase.
func (l Legs) Walk(p Phase) Pose {
	return l.assemble(l.HipPosition(p.T),
		FootPosition(p.Left, l.HalfStride, l.StepHeight, l.FootSpread/2),
		FootPosition(p.Right, l.HalfStride, l.StepHeight, -l.FootSpread/2),
	)
}

// Jump returns the tucked airborne pose. rise is the vertical speed
// normalized by the launch speed; it is clamped to [-1, 1]. At launch
// (rise = 1) the feet are pulled up to TuckHeight and the hip sits at its
// walking base; falling at launch speed (rise = -1) the legs reach down
// fully extended for the landing.
func (l Legs) Jump(rise float64) Pose {
	k := (core.ClampF(rise, -1, 1) + 1) / 2
	hipZ := core.Lerp(0.9*l.LegLength, l.BaseHeight(), k)
	footZ := l.TuckHeight * k
	hip := core.V3(l.HipForward, 0, hipZ)
	return l.assemble(hip,
		core.V3(-0.25*l.HalfStride, l.FootSpread/2, footZ),
		core.V3(0.25*l.HalfStride, -l.FootSpread/2, footZ),
	)
}

func (l Legs) assemble(hip, leftFoot, rightFoot core.Vec3) Pose {
	bone := l.LegLength / 2
	leftHip := hip.Add(core.V3(0, l.HipSplay/2, 0))
	rightHip := hip.Add(core.V3(0, -l.HipSplay/2, 0))
	return Pose{
		Hip: hip,
		Left: LegPose{
			Hip:  leftHip,
			Knee: SolveKnee(leftFoot, leftHip, bone, l.LegLength),
			Foot: leftFoot,
		},
		Right: LegPose{
			Hip:  rightHip,
			Knee: SolveKnee(rightFoot, rightHip, bone, l.LegLength),
			Foot: rightFoot,
		},
	}
}
