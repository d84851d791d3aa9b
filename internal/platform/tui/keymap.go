package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-garden/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "e", "f", "x":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "backspace":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapTextKey translates a key while the game accepts typed text.
// Printable keys become text; only ctrl+c quits.
func (km *KeyMapper) MapTextKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "enter":
		frame.Set(core.ActionConfirm)
		return false
	case "backspace":
		frame.Set(core.ActionBack)
		return false
	case "ctrl+r":
		frame.Set(core.ActionRestart)
		return false
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		frame.AddText(msg.Runes...)
	}
	return false
}

// Hold windows for run keys. Terminals report presses and auto-repeats but
// never releases, so a run key counts as held for a while after each event.
// The first press bridges the auto-repeat delay.
const (
	firstHoldMs  = 300
	repeatHoldMs = 120
)

// heldKeys tracks the two run directions across ticks.
type heldKeys struct {
	left, right   int // ticks left in the hold window
	first, repeat int
}

func newHeldKeys(tickRate int) heldKeys {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return heldKeys{
		first:  max(firstHoldMs*tickRate/1000, 1),
		repeat: max(repeatHoldMs*tickRate/1000, 1),
	}
}

// press refreshes the hold window of a direction. The opposite direction is
// released at once.
func (h *heldKeys) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.window(h.left)
		h.right = 0
	case core.ActionRight:
		h.right = h.window(h.right)
		h.left = 0
	}
}

func (h *heldKeys) window(current int) int {
	if current > 0 {
		return max(current, h.repeat)
	}
	return h.first
}

// apply marks held directions in frame and ages the windows by one tick.
func (h *heldKeys) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

func (h *heldKeys) release() {
	h.left, h.right = 0, 0
}
