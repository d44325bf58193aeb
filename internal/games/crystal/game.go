// Package crystal implements Crystal Run, an endless runner through a
// crystal cave. The player jumps over hexagonal blocks that scroll in from
// the right; every block passed scores a point and every block hit makes
// the runner flicker.
package crystal

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-run/internal/config"
	"github.com/vovakirdan/crystal-run/internal/core"
	"github.com/vovakirdan/crystal-run/internal/games/crystal/sim"
	"github.com/vovakirdan/crystal-run/internal/registry"
)

// Variant is a registered game mode.
type Variant struct {
	ID    string
	Title string
	Lives int  // 0 = endless
	Ramp  bool // Enable difficulty progression
}

// Variants lists every mode registered by this package.
var Variants = []Variant{
	{ID: "crystal", Title: "Crystal Run"},
	{ID: "crystal-survival", Title: "Crystal Run: Survival", Lives: 3, Ramp: true},
}

const jumpFlashFrames = 12

// Game wraps a simulation session with pause, restart and rendering.
type Game struct {
	variant Variant
	opts    registry.Options
	log     *log.Logger

	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	session *sim.Session
	jumps   *sim.Queue[sim.JumpEvent]

	frameClock core.Clock // Advances only while running
	fixedClock core.Clock
	paused     bool
	jumpFlash  int

	obstacleColors Palette
	crystalColors  Palette
}

// New creates a game for the given variant.
func New(v Variant, opts registry.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		variant: v,
		opts:    opts,
		log:     logger.With("game", v.ID),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	session, err := sim.NewSession(sim.Options{
		Config:     g.cfg,
		Seed:       runtime.Seed,
		Logger:     g.log,
		Debug:      runtime.Debug,
		Difficulty: config.NewDifficultyManager(g.cfg.Difficulty),
	})
	if err != nil {
		// loadConfig only returns validated configs.
		panic(err)
	}

	g.session = session
	g.jumps = session.SubscribeJumps()
	g.frameClock = core.Clock{}
	g.fixedClock = core.Clock{}
	g.paused = false
	g.jumpFlash = 0
	g.obstacleColors = NewPalette(g.cfg.Encounters.PaletteSize)
	g.crystalColors = NewPalette(sim.CrystalPalette)
}

// loadConfig resolves runner.yaml, applies the preset and the variant,
// and falls back to defaults when the result does not validate.
func (g *Game) loadConfig() config.RunnerConfig {
	cfg, err := config.LoadRunner(g.opts.ConfigPath)
	if err != nil {
		g.log.Warn("config load failed, using defaults", "err", err)
	}
	config.ApplyPreset(&cfg, config.ParsePreset(g.opts.Preset))
	g.applyVariant(&cfg)

	if err := cfg.Validate(); err != nil {
		g.log.Error("invalid config, using defaults", "err", err)
		cfg = config.DefaultRunnerConfig()
		g.applyVariant(&cfg)
	}
	return cfg
}

func (g *Game) applyVariant(cfg *config.RunnerConfig) {
	if g.variant.Lives > 0 {
		cfg.Hurt.Lives = g.variant.Lives
	}
	if g.variant.Ramp {
		cfg.Difficulty.Enabled = true
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}

// Frame handles pause and restart, then runs the variable-rate tick.
func (g *Game) Frame(in core.InputFrame, clk core.Clock) {
	if g.session == nil {
		return
	}

	if g.session.Over() {
		if in.Pressed(core.ActionRestart) {
			g.restart()
		}
		return
	}

	if in.Pressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.frameClock = g.frameClock.Advance(clk.Delta)
	g.session.FrameTick(in, g.frameClock)

	if g.jumpFlash > 0 {
		g.jumpFlash--
	}
	if len(g.jumps.Drain()) > 0 {
		g.jumpFlash = jumpFlashFrames
	}
}

// restart begins a new run in the same session, keeping the loaded
// config and the random streams.
func (g *Game) restart() {
	g.session.Restart(0)
	g.jumps.Drain()
	g.frameClock = core.Clock{}
	g.fixedClock = core.Clock{}
	g.paused = false
	g.jumpFlash = 0
}

// Step runs one fixed tick unless paused or over.
func (g *Game) Step(clk core.Clock) core.StepResult {
	if g.session == nil || g.paused || g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	g.fixedClock = g.fixedClock.Advance(clk.Delta)
	rep := g.session.FixedTick(g.fixedClock)
	return core.StepResult{
		State:  g.State(),
		Scored: rep.Scores,
		Hit:    rep.Hits,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Lives: -1, Paused: g.paused}
	}
	st := g.session.Stats()
	return core.GameState{
		Score:    st.Scores,
		Hits:     st.Hits,
		Lives:    g.session.Lives(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Session exposes the running simulation.
func (g *Game) Session() *sim.Session {
	return g.session
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func(opts registry.Options) registry.Game {
			return New(v, opts)
		})
	}
}
