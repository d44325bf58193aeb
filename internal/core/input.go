package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one frame tick.
//
// Pressed holds edges: actions that went down since the previous frame.
// Held holds levels: actions that are currently down, including ones
// pressed this frame.
type InputFrame struct {
	pressed map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Press records a just-pressed edge. A pressed action is also held.
func (f *InputFrame) Press(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold records that the action is down without a new edge.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Pressed returns true if the action went down this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Held returns true if the action is down this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.pressed)
	clear(f.held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.pressed {
		c.pressed[k] = v
	}
	for k, v := range f.held {
		c.held[k] = v
	}
	return c
}

func (f *InputFrame) ensure() {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
}
