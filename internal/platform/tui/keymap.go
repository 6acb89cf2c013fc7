package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// KeyMap holds the bindings that act on the session rather than the board.
type KeyMap struct {
	Quit       key.Binding
	NewGame    key.Binding
	History    key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewGame, k.History, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewGame, k.History},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "new game"),
			key.WithDisabled(),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "guesses"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
	}
}

// KeyIdentifier translates a key message into the identifier the game
// controller understands: "Enter", "Backspace", or a single character.
// Returns false for keys the board does not use.
func KeyIdentifier(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return wordle.KeyEnter, true
	case tea.KeyBackspace:
		return wordle.KeyBackspace, true
	case tea.KeyRunes:
		if msg.Alt || msg.Paste || len(msg.Runes) != 1 {
			return "", false
		}
		return string(msg.Runes[0]), true
	}
	return "", false
}
