package sim

// Flicker blinks the player after a hit. Any hit restarts the full flash;
// during a flash the visibility toggles every FlickTicks+1 ticks, and once
// the flash runs out the player is forced visible again.
type Flicker struct {
	flashTicks int
	flickTicks int

	remaining int
	flick     int
	visible   bool
}

// NewFlicker returns an idle flicker with the player visible.
func NewFlicker(flashTicks, flickTicks int) *Flicker {
	return &Flicker{flashTicks: flashTicks, flickTicks: flickTicks, visible: true}
}

// Tick advances one fixed tick. hits is the number of HitEvents drained
// this tick. It returns the desired visibility.
func (f *Flicker) Tick(hits int) bool {
	if hits > 0 {
		f.remaining = f.flashTicks
	}

	if f.remaining > 0 {
		if f.flick == 0 {
			f.flick = f.flickTicks
			f.visible = !f.visible
		} else {
			f.flick--
			f.remaining--
		}
	} else {
		f.visible = true
		f.flick = 0
	}
	return f.visible
}

// Visible returns the desired visibility.
func (f *Flicker) Visible() bool { return f.visible }

// Active reports whether a flash is in progress.
func (f *Flicker) Active() bool { return f.remaining > 0 }

// SyncVisibility flips the rendered visibility of h only when it differs
// from want. It reports whether a flip happened; a stale handle is never
// flipped.
func SyncVisibility(reg Registry, h Handle, want bool) bool {
	cur, ok := reg.Visible(h)
	if !ok || cur == want {
		return false
	}
	return reg.SetVisible(h, !cur)
}
