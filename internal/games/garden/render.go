package garden

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/games/garden/sim"
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// cellSink projects view-pixel sprites onto a cell rectangle of the screen.
type cellSink struct {
	dst    *core.Screen
	theme  *Theme
	top    int // first playfield row
	rows   int
	sx, sy float64 // cells per view pixel
}

func newCellSink(dst *core.Screen, theme *Theme, viewW, viewH float64) *cellSink {
	rows := max(dst.Height()-hudRows, 0)
	return &cellSink{
		dst:   dst,
		theme: theme,
		top:   hudRows,
		rows:  rows,
		sx:    float64(dst.Width()) / viewW,
		sy:    float64(rows) / viewH,
	}
}

// Draw fills every cell the sprite touches. Sprites smaller than a cell
// still take one.
func (c *cellSink) Draw(s sim.Sprite) {
	x0, x1 := span(s.X, s.W, c.sx)
	y0, y1 := span(s.Y, s.H, c.sy)
	x0, x1 = max(x0, 0), min(x1, c.dst.Width())
	y0, y1 = max(y0, 0), min(y1, c.rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	st := c.theme.Style(s)
	c.dst.FillRect(x0, c.top+y0, x1-x0, y1-y0, st.Fill, st.Color)
	if st.Edge != 0 {
		col := x1 - 1
		if s.Facing < 0 {
			col = x0
		}
		c.dst.SetCell(col, c.top+y0, core.Cell{Rune: st.Edge, Color: st.Color})
	}
}

// span maps [pos, pos+size) in pixels to a half-open cell range.
func span(pos, size, scale float64) (int, int) {
	a := int(math.Floor(pos * scale))
	b := int(math.Ceil((pos + size) * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// Render draws the current screen of the match.
func (g *Game) Render(dst *core.Screen) {
	if g.match == nil {
		return
	}
	snap := g.match.Snapshot()

	switch snap.State {
	case sim.StateTitle:
		drawTitle(dst, g.theme)
		return
	case sim.StateLobby:
		drawLobby(dst, g.theme, snap)
		return
	case sim.StateCredits:
		drawCredits(dst, g.theme)
		return
	}

	g.drawWorld(dst)
	drawHUD(dst, g.theme, snap)

	switch {
	case snap.State == sim.StateWon:
		drawWon(dst, g.theme, snap)
	case snap.State == sim.StateLost:
		drawLost(dst, g.theme, snap)
	case snap.Paused:
		drawPaused(dst)
	}
}

func (g *Game) drawWorld(dst *core.Screen) {
	w := g.cfg.World
	g.match.Draw(newCellSink(dst, g.theme, w.ViewWidth, w.ViewHeight))
}

// drawHUD writes the status line: lives, remaining time, orb slots and kills.
func drawHUD(dst *core.Screen, theme *Theme, s sim.Snapshot) {
	dst.FillRect(0, 0, dst.Width(), hudRows, ' ', core.ColorDefault)
	dst.DrawText(1, 0, hudLine(s), theme.HUDColor())
}

func hudLine(s sim.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("♥", max(s.Lives, 0)))

	if s.RemainingMs >= 0 {
		secs := (s.RemainingMs + 999) / 1000
		fmt.Fprintf(&sb, "  ⏱ %ds", secs)
	} else {
		fmt.Fprintf(&sb, "  ⏱ %.1fs", float64(s.ElapsedMs)/1000)
	}

	sb.WriteString("  Orbs ")
	sb.WriteString(strings.Repeat("●", min(s.Collected, s.TotalOrbs)))
	sb.WriteString(strings.Repeat("○", max(s.TotalOrbs-s.Collected, 0)))
	fmt.Fprintf(&sb, "  Defeated %d  Round %d", s.Defeated, s.Round)
	return sb.String()
}
