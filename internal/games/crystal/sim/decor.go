package sim

import (
	"math"

	"github.com/vovakirdan/crystal-run/internal/config"
	"github.com/vovakirdan/crystal-run/internal/core"
)

// CrystalPalette is the number of crystal colors.
const CrystalPalette = 32

// caveCenterRatio places the cave axis relative to its radius.
const caveCenterRatio = 0.75

// Crystal is a decoration growing out of the cave wall.
type Crystal struct {
	Handle  Handle
	X       float64
	Angle   float64 // Position around the cave wall; 0 is the far side, π/2 the ceiling
	Length  float64
	Radius  float64
	Palette int
}

// Pos returns the crystal's world position on the cave wall.
func (c *Crystal) Pos(caveRadius float64) core.Vec3 {
	reach := caveRadius - c.Length
	return core.V3(
		c.X,
		math.Cos(c.Angle)*reach,
		math.Sin(c.Angle)*reach+caveRadius*caveCenterRatio-0.25,
	)
}

// Decor spaces crystals along the track. It keeps the x of the most
// recent crystal and, whenever that has scrolled inside the spawn line,
// places new ones at jittered gaps until the line is filled again.
type Decor struct {
	cfg      config.DecorConfig
	lastX    float64
	crystals []*Crystal
}

// NewDecor returns a decor whose first fill covers [0, SpawnX].
func NewDecor(cfg config.DecorConfig) *Decor {
	return &Decor{cfg: cfg}
}

// Update scrolls existing crystals by dx, spawns new ones, and returns the
// ones created and the ones that passed the despawn line.
func (d *Decor) Update(dx float64, rng Source) (spawned, removed []*Crystal) {
	for _, c := range d.crystals {
		c.X -= dx
	}

	kept := d.crystals[:0]
	for _, c := range d.crystals {
		if c.X < d.cfg.DespawnX {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(d.crystals); i++ {
		d.crystals[i] = nil
	}
	d.crystals = kept

	d.lastX -= dx
	for d.lastX <= d.cfg.SpawnX {
		d.lastX += d.cfg.MinGap + d.cfg.GapJitter*float64(rng.Float32())
		c := &Crystal{
			X:       d.lastX,
			Angle:   -math.Pi/4 + 1.5*math.Pi*float64(rng.Float32()),
			Length:  0.5 + (float64(rng.Float32())-0.5)*0.2,
			Radius:  0.2 + (float64(rng.Float32())-0.5)*0.1,
			Palette: int(math.Round(float64(rng.Float32()) * (CrystalPalette - 1))),
		}
		d.crystals = append(d.crystals, c)
		spawned = append(spawned, c)
	}
	return spawned, removed
}

// Crystals returns the live crystals.
func (d *Decor) Crystals() []*Crystal {
	return d.crystals
}

// Clear drops every crystal and rewinds the spacing so the next Update
// fills the track again.
func (d *Decor) Clear() []*Crystal {
	out := d.crystals
	d.crystals = nil
	d.lastX = 0
	return out
}
