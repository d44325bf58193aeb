package sim

import "testing"

func TestFlickerSingleHit(t *testing.T) {
	w := NewWorld()
	h := w.Create(0)
	f := NewFlicker(40, 4)

	var toggleTicks []int
	for tick := 0; tick < 120; tick++ {
		hits := 0
		if tick == 0 {
			hits = 1
		}
		want := f.Tick(hits)
		if SyncVisibility(w, h, want) {
			toggleTicks = append(toggleTicks, tick)
		}
		if vis, _ := w.Visible(h); vis != want {
			t.Fatalf("tick %d: rendered %v, desired %v", tick, vis, want)
		}
		if tick >= 45 && !want {
			t.Fatalf("tick %d: hidden after the last toggle", tick)
		}
		if tick >= 49 && f.Active() {
			t.Fatalf("tick %d: flash still active", tick)
		}
	}

	if len(toggleTicks) != 10 {
		t.Fatalf("got %d toggles at %v, expected 10", len(toggleTicks), toggleTicks)
	}
	for i, tick := range toggleTicks {
		if tick != i*5 {
			t.Errorf("toggle %d at tick %d, expected %d", i, tick, i*5)
		}
	}
}

func TestFlickerIdleStaysVisible(t *testing.T) {
	f := NewFlicker(40, 4)
	for i := 0; i < 10; i++ {
		if !f.Tick(0) {
			t.Fatalf("tick %d: idle flicker hid the player", i)
		}
	}
}

func TestFlickerRehitRestarts(t *testing.T) {
	f := NewFlicker(40, 4)
	for tick := 0; tick < 30; tick++ {
		hits := 0
		if tick == 0 || tick == 20 {
			hits = 1
		}
		f.Tick(hits)
	}
	// A lone hit would have finished at tick 49; the second one extends it.
	for tick := 30; tick < 60; tick++ {
		f.Tick(0)
	}
	if !f.Active() {
		t.Error("flash should still run after a re-hit")
	}
	for tick := 60; tick < 200; tick++ {
		f.Tick(0)
	}
	if f.Active() || !f.Visible() {
		t.Error("flash should end visible")
	}
}

func TestSyncVisibilityEdgeTriggered(t *testing.T) {
	w := NewWorld()
	h := w.Create(0)

	if SyncVisibility(w, h, true) {
		t.Error("flipped an already visible object")
	}
	if !SyncVisibility(w, h, false) {
		t.Error("expected a flip to hidden")
	}
	if SyncVisibility(w, h, false) {
		t.Error("flipped an already hidden object")
	}

	w.Destroy(h)
	if SyncVisibility(w, h, true) {
		t.Error("flipped a stale handle")
	}
}
