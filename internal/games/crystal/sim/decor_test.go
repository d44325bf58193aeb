package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/crystal-run/internal/config"
)

func TestDecorSpacing(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Decor
	d := NewDecor(cfg)
	rng := NewSource(3)

	spawned, removed := d.Update(0, rng)
	if len(removed) != 0 {
		t.Fatalf("removed %d on the first fill", len(removed))
	}
	if len(spawned) == 0 {
		t.Fatal("first fill spawned nothing")
	}

	prev := 0.0
	for i, c := range spawned {
		gap := c.X - prev
		if gap < cfg.MinGap || gap >= cfg.MinGap+cfg.GapJitter {
			t.Errorf("crystal %d gap %v outside [%v, %v)", i, gap, cfg.MinGap, cfg.MinGap+cfg.GapJitter)
		}
		if c.Angle < -math.Pi/4 || c.Angle >= -math.Pi/4+1.5*math.Pi {
			t.Errorf("crystal %d angle %v out of range", i, c.Angle)
		}
		prev = c.X
	}
	if last := spawned[len(spawned)-1].X; last <= cfg.SpawnX {
		t.Errorf("fill stopped at %v, expected past the spawn line %v", last, cfg.SpawnX)
	}
}

func TestDecorScrollsAndDespawns(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Decor
	d := NewDecor(cfg)
	rng := NewSource(3)
	d.Update(0, rng)
	first := d.Crystals()[0]

	var gone bool
	for i := 0; i < 100 && !gone; i++ {
		_, removed := d.Update(0.5, rng)
		for _, c := range removed {
			if c == first {
				gone = true
			}
		}
	}
	if !gone {
		t.Error("first crystal never despawned")
	}
	for _, c := range d.Crystals() {
		if c.X < cfg.DespawnX {
			t.Errorf("crystal at %v kept past despawn line", c.X)
		}
	}
}

func TestDecorClearRefills(t *testing.T) {
	d := NewDecor(config.DefaultRunnerConfig().Decor)
	rng := NewSource(5)
	d.Update(0, rng)
	n := len(d.Clear())
	if n == 0 || len(d.Crystals()) != 0 {
		t.Fatalf("Clear returned %d, left %d", n, len(d.Crystals()))
	}
	spawned, _ := d.Update(0, rng)
	if len(spawned) == 0 {
		t.Error("no refill after Clear")
	}
}
