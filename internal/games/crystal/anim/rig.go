package anim

import (
	"fmt"

	"github.com/vovakirdan/crystal-run/internal/core"
)

// JointKind enumerates the animated parts of the runner.
type JointKind uint8

const (
	JointHip JointKind = iota
	JointLeftThigh
	JointRightThigh
	JointLeftShin
	JointRightShin
	JointLeftFoot
	JointRightFoot
	JointTail
)

var jointNames = [...]string{
	JointHip:        "hip",
	JointLeftThigh:  "left-thigh",
	JointRightThigh: "right-thigh",
	JointLeftShin:   "left-shin",
	JointRightShin:  "right-shin",
	JointLeftFoot:   "left-foot",
	JointRightFoot:  "right-foot",
	JointTail:       "tail",
}

// JointTag identifies one joint. Index is the segment number for
// JointTail and zero otherwise.
type JointTag struct {
	Kind  JointKind
	Index int
}

func (t JointTag) String() string {
	if int(t.Kind) >= len(jointNames) {
		return fmt.Sprintf("joint(%d)", t.Kind)
	}
	if t.Kind == JointTail {
		return fmt.Sprintf("tail[%d]", t.Index)
	}
	return jointNames[t.Kind]
}

// Joints lists every joint of a rig with the given number of tail
// segments, in a stable order.
func Joints(tailSegments int) []JointTag {
	tags := []JointTag{
		{Kind: JointHip},
		{Kind: JointLeftThigh},
		{Kind: JointRightThigh},
		{Kind: JointLeftShin},
		{Kind: JointRightShin},
		{Kind: JointLeftFoot},
		{Kind: JointRightFoot},
	}
	for i := 0; i < tailSegments; i++ {
		tags = append(tags, JointTag{Kind: JointTail, Index: i})
	}
	return tags
}

// Frame is the fully evaluated animation for one instant.
type Frame struct {
	Phase   Phase
	Jumping bool
	Pose    Pose
	Tail    []core.Vec3
}

// Place returns the local transform of a joint in this frame. Leg
// segments sit on their midpoint facing the distal end.
func (f Frame) Place(tag JointTag) (core.Transform, error) {
	switch tag.Kind {
	case JointHip:
		return core.NewTransform(f.Pose.Hip), nil
	case JointLeftThigh:
		return Segment(f.Pose.Left.Hip, f.Pose.Left.Knee), nil
	case JointRightThigh:
		return Segment(f.Pose.Right.Hip, f.Pose.Right.Knee), nil
	case JointLeftShin:
		return Segment(f.Pose.Left.Knee, f.Pose.Left.Foot), nil
	case JointRightShin:
		return Segment(f.Pose.Right.Knee, f.Pose.Right.Foot), nil
	case JointLeftFoot:
		return core.NewTransform(f.Pose.Left.Foot), nil
	case JointRightFoot:
		return core.NewTransform(f.Pose.Right.Foot), nil
	case JointTail:
		if tag.Index < 0 || tag.Index >= len(f.Tail) {
			return core.Transform{}, fmt.Errorf("anim: tail segment %d out of range [0,%d)", tag.Index, len(f.Tail))
		}
		root := f.Pose.Hip
		if tag.Index > 0 {
			root = f.Tail[tag.Index-1]
		}
		return core.LookAt(f.Tail[tag.Index], f.Tail[tag.Index].Add(f.Tail[tag.Index].Sub(root))), nil
	default:
		return core.Transform{}, fmt.Errorf("anim: unknown joint %v", tag)
	}
}

// Animator evaluates the whole rig.
type Animator struct {
	Legs         Legs
	Tail         Tail
	JumpVelocity float64
}

// Evaluate computes the animation frame. Grounded frames run the walk
// cycle and tail sway; airborne frames use the jump pose and tail whip
// keyed on velocity / JumpVelocity.
func (a Animator) Evaluate(elapsed, speed float64, airborne bool, velocity float64) Frame {
	phase := GaitPhase(elapsed, speed, a.Legs.HalfStride)
	if !airborne {
		return Frame{
			Phase: phase,
			Pose:  a.Legs.Walk(phase),
			Tail:  a.Tail.Sway(phase.T),
		}
	}

	rise := 0.0
	if a.JumpVelocity != 0 {
		rise = core.ClampF(velocity/a.JumpVelocity, -1, 1)
	}
	return Frame{
		Phase:   phase,
		Jumping: true,
		Pose:    a.Legs.Jump(rise),
		Tail:    a.Tail.Whip(rise),
	}
}
