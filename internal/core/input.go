package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left (held)
	ActionRight          // D, Right arrow - run right (held)
	ActionJump           // Space, W, Up - jump when grounded
	ActionFire           // E, F, X - shoot in the facing direction
	ActionConfirm        // Enter - advance screens, submit name
	ActionBack           // Esc, Backspace - previous screen, delete a name character
	ActionRestart        // R key - new round after a win or loss
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
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

// InputFrame is the input snapshot for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Text holds characters typed this frame while the game accepts text
	// (the victory name prompt). It is empty otherwise.
	Text []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddText appends typed characters to the frame.
func (f *InputFrame) AddText(r ...rune) {
	f.Text = append(f.Text, r...)
}

// Clear resets all actions and text for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}
