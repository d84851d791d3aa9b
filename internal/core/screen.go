package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single terminal cell: a rune and its foreground color.
// A zero Rune marks the trailing half of a double-width rune.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded because every
// frame is redrawn from scratch.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Color: ColorDefault})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Double-width runes take two cells. Text beyond the screen is clipped.
func (s *Screen) DrawText(x, y int, text string, color Color) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x, y, Cell{Rune: r, Color: color})
		if w == 2 {
			s.SetCell(x+1, y, Cell{Rune: 0, Color: color})
		}
		x += w
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, color Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawText(x, y, text, color)
}

// FillRect fills a cell rectangle with the given rune and color.
func (s *Screen) FillRect(x, y, w, h int, r rune, color Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetCell(col, row, Cell{Rune: r, Color: color})
		}
	}
}

// DrawBox draws a box outline using box-drawing characters and clears its interior.
func (s *Screen) DrawBox(x, y, w, h int, color Color) {
	if w < 2 || h < 2 {
		return
	}
	s.FillRect(x+1, y+1, w-2, h-2, ' ', ColorDefault)

	s.SetCell(x, y, Cell{'┌', color})
	s.SetCell(x+w-1, y, Cell{'┐', color})
	s.SetCell(x, y+h-1, Cell{'└', color})
	s.SetCell(x+w-1, y+h-1, Cell{'┘', color})

	for col := x + 1; col < x+w-1; col++ {
		s.SetCell(col, y, Cell{'─', color})
		s.SetCell(col, y+h-1, Cell{'─', color})
	}
	for row := y + 1; row < y+h-1; row++ {
		s.SetCell(x, row, Cell{'│', color})
		s.SetCell(x+w-1, row, Cell{'│', color})
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		if r := s.Get(x, y); r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TextWidth returns the number of cells text occupies on screen.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}
