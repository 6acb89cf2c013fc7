package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are rendered as one run.
func RenderScreen(s *core.Screen, th *Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			style := s.GetCell(x, y).Style

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != style {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(th.Style(style).Render(run.String()))
		}
	}
	return sb.String()
}

const (
	title     = "Word of the Day"
	resizeMsg = "Please enlarge the terminal"
)

var (
	titleStyle = core.Style{Fg: core.ColorText}
	toastStyle = core.Style{Fg: core.ColorInk, Bg: core.ColorText}
	dimStyle   = core.Style{Fg: core.ColorMuted}
)

// draw paints the model's last snapshot into its screen buffer.
func (m *Model) draw() {
	s := m.screen
	s.Clear()

	if m.layout.TooSmall() {
		drawTooSmall(s, m.layout)
		return
	}

	s.DrawTextCentered(m.layout.TitleY, title, titleStyle)
	drawBoard(s, m.layout, m.snap)
	drawKeyboard(s, m.layout, m.snap.Keys)
	drawToasts(s, m.layout, m.toasts.texts())
}

func drawTooSmall(s *core.Screen, l Layout) {
	y := s.Height() / 2
	s.DrawTextCentered(y-1, resizeMsg, titleStyle)
	s.DrawTextCentered(y+1, fmt.Sprintf("%dx%d, need %dx%d", l.Width, l.Height, MinWidth, MinHeight), dimStyle)
}

func drawBoard(s *core.Screen, l Layout, snap wordle.Snapshot) {
	for row := range wordle.MaxAttempts {
		for col := range wordle.WordLength {
			cell := snap.Board[row][col]
			r := l.Board[row][col]
			st := tileStyle(cell.Status)

			ch := '·'
			if cell.Letter != 0 {
				ch = rune(cell.Letter)
			}
			s.FillRect(r, ' ', st)
			cx, _ := r.Center()
			s.Set(cx, r.Y, ch, st)
		}
	}
}

func drawKeyboard(s *core.Screen, l Layout, keys wordle.KeyStatuses) {
	for _, k := range l.Keys {
		st := keyStyle(wordle.KeyUnused)
		if ch := k.Letter(); ch != 0 {
			st = keyStyle(keys.Get(ch))
		}
		s.DrawText(k.Rect.X, k.Rect.Y, k.Label, st)
	}
}

func drawToasts(s *core.Screen, l Layout, texts []string) {
	for i, text := range texts {
		y := l.ToastY + i
		if y >= s.Height() {
			return
		}
		s.DrawTextCentered(y, " "+text+" ", toastStyle)
	}
}
