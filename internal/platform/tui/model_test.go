package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-garden/internal/core"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	frames []core.InputFrame
	state  core.GameState
	resets int
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub", core.ColorGreen) }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	f := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			f.Set(a)
		}
	}
	f.AddText(in.Text...)
	g.frames = append(g.frames, f)
	return core.StepResult{State: g.state}
}

func (g *stubGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func newStubModel() (Model, *stubGame) {
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, Options{})
	return m, g
}

func TestModelHoldsRunKey(t *testing.T) {
	m, g := newStubModel()

	m = send(m, runeKey('d'))
	m = send(m, TickMsg{})
	m = send(m, TickMsg{})
	if !g.frames[0].Has(core.ActionRight) || !g.frames[1].Has(core.ActionRight) {
		t.Error("right should stay held across ticks after one press")
	}

	m = send(m, runeKey(' '))
	m = send(m, TickMsg{})
	if !g.last().Has(core.ActionJump) {
		t.Error("jump missing from the next frame")
	}
	send(m, TickMsg{})
	if g.last().Has(core.ActionJump) {
		t.Error("jump repeated on a later frame")
	}
}

func TestModelTextEntry(t *testing.T) {
	m, g := newStubModel()
	g.state.TextEntry = true
	m = send(m, TickMsg{})

	m = send(m, runeKey('q'))
	if m.quitting {
		t.Fatal("q quit during text entry")
	}
	m = send(m, runeKey('d'))
	m = send(m, TickMsg{})

	f := g.last()
	if string(f.Text) != "qd" {
		t.Errorf("Text = %q, expected qd", string(f.Text))
	}
	if f.Has(core.ActionRight) {
		t.Error("d moved the player during text entry")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newStubModel()
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit outside text entry")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newStubModel()
	m = send(m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if g.resets != 0 {
		t.Errorf("Reset called %d times on resize, expected 0", g.resets)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, expected 40x10", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View() missing the game render")
	}
}
