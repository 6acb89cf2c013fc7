package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Fixed palette entries that are not user-configurable.
const (
	inkColor   = "0"
	mutedColor = "241"
)

// Theme maps core palette slots to terminal colors and caches the
// resulting lipgloss styles.
type Theme struct {
	renderer *lipgloss.Renderer
	colors   map[core.Color]lipgloss.TerminalColor
	styles   map[core.Style]lipgloss.Style
}

// NewTheme builds a theme from configured color codes. A nil renderer uses
// the default (stdout) renderer; SSH sessions pass their own.
func NewTheme(tc config.ThemeConfig, r *lipgloss.Renderer) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	colors := map[core.Color]lipgloss.TerminalColor{
		core.ColorDefault: lipgloss.NoColor{},
		core.ColorInk:     lipgloss.Color(inkColor),
		core.ColorMuted:   lipgloss.Color(mutedColor),
	}
	for slot, code := range map[core.Color]string{
		core.ColorText:    tc.Text,
		core.ColorCorrect: tc.Correct,
		core.ColorPresent: tc.Present,
		core.ColorAbsent:  tc.Absent,
		core.ColorFilled:  tc.Filled,
		core.ColorEmpty:   tc.Empty,
		core.ColorUnused:  tc.Unused,
	} {
		if code == "" {
			colors[slot] = lipgloss.NoColor{}
			continue
		}
		colors[slot] = lipgloss.Color(code)
	}

	return &Theme{
		renderer: r,
		colors:   colors,
		styles:   make(map[core.Style]lipgloss.Style),
	}
}

// Style returns the lipgloss style for a cell style.
func (t *Theme) Style(st core.Style) lipgloss.Style {
	if s, ok := t.styles[st]; ok {
		return s
	}
	s := t.renderer.NewStyle().
		Foreground(t.color(st.Fg)).
		Background(t.color(st.Bg))
	t.styles[st] = s
	return s
}

// Renderer returns the lipgloss renderer the theme draws with.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

func (t *Theme) color(c core.Color) lipgloss.TerminalColor {
	if tc, ok := t.colors[c]; ok {
		return tc
	}
	return lipgloss.NoColor{}
}

// tileStyle is the cell style of a board tile.
func tileStyle(s wordle.LetterStatus) core.Style {
	switch s {
	case wordle.LetterFilled:
		return core.Style{Fg: core.ColorInk, Bg: core.ColorFilled}
	case wordle.LetterCorrect:
		return core.Style{Fg: core.ColorInk, Bg: core.ColorCorrect}
	case wordle.LetterPresent:
		return core.Style{Fg: core.ColorInk, Bg: core.ColorPresent}
	case wordle.LetterAbsent:
		return core.Style{Fg: core.ColorText, Bg: core.ColorAbsent}
	default:
		return core.Style{Fg: core.ColorMuted, Bg: core.ColorEmpty}
	}
}

// keyStyle is the cell style of a virtual keyboard key.
func keyStyle(s wordle.KeyStatus) core.Style {
	switch s {
	case wordle.KeyCorrect:
		return core.Style{Fg: core.ColorInk, Bg: core.ColorCorrect}
	case wordle.KeyPresent:
		return core.Style{Fg: core.ColorInk, Bg: core.ColorPresent}
	case wordle.KeyAbsent:
		return core.Style{Fg: core.ColorMuted, Bg: core.ColorAbsent}
	default:
		return core.Style{Fg: core.ColorInk, Bg: core.ColorUnused}
	}
}
