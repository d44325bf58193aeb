package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-run/internal/core"
	"github.com/vovakirdan/crystal-run/internal/registry"
	"github.com/vovakirdan/crystal-run/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	hold      *HoldTracker
	stepper   *core.Stepper
	log       *log.Logger
	fixedSeed bool // Keep the seed across restarts

	input      core.InputFrame
	lastFrame  time.Time
	frameClock core.Clock
	fixedClock core.Clock
	gameState  core.GameState

	runTicks   int // Unpaused fixed ticks in the current run
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		hold:      NewHoldTracker(DefaultHoldWindow),
		stepper:   core.NewStepper(cfg.FixedRate, MaxStepsPerFrame),
		log:       logger,
		fixedSeed: fixedSeed,
		input:     core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		m = m.handleFrame(time.Time(msg))
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		if m.hold.Key(action, now) {
			m.input.Press(action)
		} else {
			m.input.Hold(action)
		}

	case core.ActionBack:
		if m.gameState.Paused || m.gameState.GameOver {
			m.backToMenu = true
			m.saveRun()
			return m, tea.Quit
		}

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case core.ActionPause:
		m.input.Press(action)
	}

	return m, nil
}

// handleFrame runs one frame tick followed by the fixed steps it owes.
func (m Model) handleFrame(now time.Time) Model {
	dt := frameDelta(m.lastFrame, now)
	m.lastFrame = now

	m.hold.Apply(&m.input, now)
	m.frameClock = m.frameClock.Advance(dt)
	m.game.Frame(m.input, m.frameClock)
	m.input.Clear()

	for range m.stepper.Advance(dt) {
		m.fixedClock = m.fixedClock.Advance(m.stepper.Delta())
		res := m.game.Step(m.fixedClock)
		if !res.State.Paused && !res.State.GameOver {
			m.runTicks++
		}
	}
	m.gameState = m.game.State()

	if m.gameState.GameOver {
		m.saveRun()
	}
	return m
}

// restart begins a new run, reseeding unless a seed was given.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.hold.Reset()
	m.stepper.Reset()
	m.input.Clear()
	m.runTicks = 0
	m.runSaved = false
}

// saveRun stores the current run once, when it scored anything.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:     m.game.ID(),
		Score:      state.Score,
		Hits:       state.Hits,
		FixedTicks: m.runTicks,
		Duration:   float64(m.runTicks) * m.stepper.Delta(),
		Seed:       m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("could not save run", "game", run.GameID, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".crystalrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
	}
}

// State returns the game state observed after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
