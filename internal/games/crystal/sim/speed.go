package sim

// LevelSpeed is the scroll speed shared by everything that moves with the
// track. It is constant in endless mode and ramped by difficulty in
// survival.
type LevelSpeed struct {
	value float64
}

// NewLevelSpeed returns a LevelSpeed holding v.
func NewLevelSpeed(v float64) *LevelSpeed {
	return &LevelSpeed{value: v}
}

// Get returns the current speed.
func (s *LevelSpeed) Get() float64 { return s.value }

// Set replaces the current speed.
func (s *LevelSpeed) Set(v float64) { s.value = v }
