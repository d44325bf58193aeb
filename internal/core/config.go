package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Variable-rate frame ticks per second (target)
	FixedRate int   // Fixed-rate simulation ticks per second
	Seed      int64 // RNG seed for deterministic gameplay
	Debug     bool  // Ordering faults panic instead of being skipped
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		FixedRate: 64,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// FixedDelta returns the duration of one fixed tick in seconds.
func (c RuntimeConfig) FixedDelta() float64 {
	if c.FixedRate <= 0 {
		return 1.0 / 64
	}
	return 1.0 / float64(c.FixedRate)
}

// Clock is the time handed to every tick: total elapsed seconds on the
// cadence that is ticking, and the seconds since its previous tick.
type Clock struct {
	Elapsed float64
	Delta   float64
}

// Advance returns the clock moved forward by dt.
func (c Clock) Advance(dt float64) Clock {
	return Clock{Elapsed: c.Elapsed + dt, Delta: dt}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Obstacles passed
	Hits     int  // Obstacles that hit the player
	Lives    int  // Remaining lives, -1 when the mode is endless
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each fixed tick.
type StepResult struct {
	State  GameState
	Scored int // ScoreEvents emitted this tick
	Hit    int // HitEvents emitted this tick
}
