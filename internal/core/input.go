package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionFlapDown              // Space pressed - flap while playing, restart after game over
	ActionFlapUp                // Space released - re-arms the flap
	ActionRestart               // R key - restart after game over
	ActionToggleHitboxes        // H key - debug hitbox overlay, any state
	ActionQuit                  // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlapDown:
		return "FlapDown"
	case ActionFlapUp:
		return "FlapUp"
	case ActionRestart:
		return "Restart"
	case ActionToggleHitboxes:
		return "ToggleHitboxes"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the input events collected between two simulation ticks.
// Events keep their arrival order: a press followed by a release is not the
// same as a release followed by a press.
type InputFrame struct {
	Events []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Action, 0, 4)}
}

// Push appends an event to the frame. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e == a {
			return true
		}
	}
	return false
}

// Len returns the number of pending events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
