package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// patternRunes marks scored letters in the guesses table.
var patternRunes = map[wordle.LetterStatus]rune{
	wordle.LetterCorrect: '■',
	wordle.LetterPresent: '□',
	wordle.LetterAbsent:  '·',
}

// pattern renders an attempt's statuses as a compact string.
func pattern(a wordle.Attempt) string {
	var sb strings.Builder
	for i, s := range a.Statuses {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(patternRunes[s])
	}
	return sb.String()
}

// newHistoryTable lists the guesses of the current game.
func newHistoryTable(history []wordle.Attempt, th *Theme) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 2},
		{Title: "Guess", Width: 7},
		{Title: "Result", Width: 11},
		{Title: "Hits", Width: 4},
	}

	rows := make([]table.Row, len(history))
	for i, a := range history {
		hits := 0
		for _, s := range a.Statuses {
			if s == wordle.LetterCorrect || s == wordle.LetterPresent {
				hits++
			}
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			a.Guess.String(),
			pattern(a),
			strconv.Itoa(hits),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(wordle.MaxAttempts+1),
	)

	r := th.Renderer()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(mutedColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = r.NewStyle()
	t.SetStyles(s)

	return t
}
