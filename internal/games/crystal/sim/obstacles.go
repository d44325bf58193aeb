package sim

import (
	"math"

	"github.com/vovakirdan/crystal-run/internal/core"
)

// Outcome is the result of testing an obstacle against the player.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeHit
	OutcomeScore
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeScore:
		return "score"
	default:
		return "none"
	}
}

// Obstacle is a hexagonal block scrolling toward the player.
type Obstacle struct {
	Handle  Handle
	X       float64
	Radius  float64 // Half-width of the hit zone along X
	Height  float64 // Player below this height inside the zone is hit
	Palette int
	Spin    float64 // Yaw in radians, cosmetic
	Scored  bool
}

// Advance scrolls the obstacle by dx and then tests it against a player at
// height playerZ. Once an obstacle has produced an outcome it keeps moving
// but never produces another.
func (o *Obstacle) Advance(dx, playerZ float64) Outcome {
	o.X -= dx
	if o.Scored {
		return OutcomeNone
	}
	if math.Abs(o.X) < o.Radius && playerZ < o.Height {
		o.Scored = true
		return OutcomeHit
	}
	if o.X < 0 {
		o.Scored = true
		return OutcomeScore
	}
	return OutcomeNone
}

// Transform returns the obstacle's world transform.
func (o *Obstacle) Transform() core.Transform {
	facing := core.V3(math.Cos(o.Spin), math.Sin(o.Spin), 0)
	return core.Transform{Pos: core.V3(o.X, 0, 0), Facing: facing, Scale: 1}
}

// Field owns the live obstacles.
type Field struct {
	obstacles []*Obstacle
	despawnX  float64
}

// NewField returns an empty field that removes obstacles behind despawnX.
func NewField(despawnX float64) *Field {
	return &Field{despawnX: despawnX}
}

// Add inserts an obstacle.
func (f *Field) Add(o *Obstacle) {
	f.obstacles = append(f.obstacles, o)
}

// Obstacles returns the live obstacles in spawn order.
func (f *Field) Obstacles() []*Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Update scrolls every obstacle by dx, emits at most one hit or score per
// obstacle, and removes obstacles that scrolled past the despawn line.
// The removed obstacles are returned so their handles can be destroyed.
func (f *Field) Update(dx, playerZ float64, hits *Channel[HitEvent], scores *Channel[ScoreEvent]) []*Obstacle {
	for _, o := range f.obstacles {
		switch o.Advance(dx, playerZ) {
		case OutcomeHit:
			hits.Emit(HitEvent{})
		case OutcomeScore:
			scores.Emit(ScoreEvent{})
		}
	}

	var removed []*Obstacle
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X < f.despawnX {
			removed = append(removed, o)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(f.obstacles); i++ {
		f.obstacles[i] = nil
	}
	f.obstacles = kept
	return removed
}

// Clear drops all obstacles and returns them.
func (f *Field) Clear() []*Obstacle {
	out := f.obstacles
	f.obstacles = nil
	return out
}

// Prune removes obstacles whose handles are no longer alive and returns
// them.
func (f *Field) Prune(alive func(Handle) bool) []*Obstacle {
	var stale []*Obstacle
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if !alive(o.Handle) {
			stale = append(stale, o)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(f.obstacles); i++ {
		f.obstacles[i] = nil
	}
	f.obstacles = kept
	return stale
}
