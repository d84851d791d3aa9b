package garden

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/games/garden/sim"
)

//go:embed themes/default.yaml
var defaultThemeYAML []byte

// Glyph describes how one sprite kind is drawn.
type Glyph struct {
	Fill  string `yaml:"fill"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
	Color string `yaml:"color"`
	Alt   string `yaml:"alt,omitempty"`
}

// Theme maps sprite kinds to glyphs.
type Theme struct {
	Placeholder Glyph            `yaml:"placeholder"`
	HUD         string           `yaml:"hud"`
	Glyphs      map[string]Glyph `yaml:"glyphs"`
}

// Style is a resolved glyph ready to be written into cells.
type Style struct {
	Fill  rune
	Edge  rune // drawn on the leading column, 0 for none
	Color core.Color
}

var fallbackTheme = Theme{
	Placeholder: Glyph{Fill: "?", Color: "bright_magenta"},
	HUD:         "bright_white",
}

// DefaultTheme returns the embedded theme.
func DefaultTheme() *Theme {
	t, err := ParseTheme(defaultThemeYAML)
	if err != nil {
		fb := fallbackTheme
		return &fb
	}
	return t
}

// ParseTheme decodes a theme on top of the built-in one, so a partial file
// only overrides the kinds it names.
func ParseTheme(data []byte) (*Theme, error) {
	t := fallbackTheme
	t.Glyphs = make(map[string]Glyph)
	if err := yaml.Unmarshal(defaultThemeYAML, &t); err != nil {
		return nil, fmt.Errorf("theme: cannot parse built-in theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return &t, nil
}

// LoadTheme reads the theme at path. An empty path is the built-in theme;
// on error the built-in theme is returned along with the error.
func LoadTheme(path string) (*Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("theme: cannot read %s: %w", path, err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("theme: cannot load %s: %w", path, err)
	}
	return t, nil
}

// Style resolves the glyph for a sprite. Kinds missing from the theme get
// the placeholder.
func (t *Theme) Style(s sim.Sprite) Style {
	g, ok := t.Glyphs[s.Kind.String()]
	if !ok || g.Fill == "" {
		g = t.Placeholder
	}

	st := Style{Fill: firstRune(g.Fill, '?'), Color: parseColor(g.Color)}
	if (s.State == sim.StateHurt || s.State == sim.StateDead) && g.Alt != "" {
		st.Color = parseColor(g.Alt)
	}
	switch {
	case s.Facing < 0 && g.Left != "":
		st.Edge = firstRune(g.Left, 0)
	case s.Facing > 0 && g.Right != "":
		st.Edge = firstRune(g.Right, 0)
	}
	return st
}

// HUDColor returns the color of the status line.
func (t *Theme) HUDColor() core.Color {
	return parseColor(t.HUD)
}

func parseColor(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}

func firstRune(s string, fallback rune) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fallback
	}
	return r
}
