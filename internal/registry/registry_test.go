package registry

import (
	"testing"

	"github.com/vovakirdan/crystal-run/internal/core"
)

type stubGame struct {
	id   string
	opts Options
}

func (g *stubGame) ID() string                        { return g.id }
func (g *stubGame) Title() string                     { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)          {}
func (g *stubGame) Frame(core.InputFrame, core.Clock) {}
func (g *stubGame) Step(core.Clock) core.StepResult   { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)               {}
func (g *stubGame) State() core.GameState             { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func(opts Options) Game { return &stubGame{id: "stub-a", opts: opts} })

	if !Exists("stub-a") {
		t.Fatal("stub-a not registered")
	}

	g, err := Create("stub-a", Options{ConfigPath: "x.yaml"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.(*stubGame).opts.ConfigPath != "x.yaml" {
		t.Error("options not passed to the factory")
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("stub-a missing from List")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(Options) Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func(Options) Game { return &stubGame{id: "stub-dup"} })
}
