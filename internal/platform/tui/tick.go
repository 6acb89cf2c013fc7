package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastExpiredMsg is sent when a toast's lifetime runs out.
type toastExpiredMsg struct {
	id int
}

// expireCmd returns a command that reports toast id as expired after d.
func expireCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// bellCmd rings the terminal bell on w.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // Best-effort cue
		w.Write([]byte{'\a'})
		return nil
	}
}
