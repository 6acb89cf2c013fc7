package tui

import (
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Minimum terminal size for the board, keyboard, toast line and help footer.
const (
	MinWidth  = 44
	MinHeight = 22
)

const (
	tileW    = 3
	tileGap  = 1
	rowGap   = 1
	letterW  = 3
	keyGap   = 1
	enterW   = 7
	deleteW  = 5
	boardTop = 2 // below the title and a blank line
)

// keyboardRows is the virtual keyboard, top row first.
var keyboardRows = [3][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{wordle.KeyEnter, "Z", "X", "C", "V", "B", "N", "M", wordle.KeyBackspace},
}

// Key is one clickable key on the virtual keyboard.
type Key struct {
	ID    string // identifier passed to the controller
	Label string
	Rect  core.Rect
}

// Letter returns the key's letter, or 0 for Enter and Backspace.
func (k Key) Letter() byte {
	if len(k.ID) == 1 {
		return k.ID[0]
	}
	return 0
}

// Layout positions every element for a given terminal size. The game area
// is everything above the help footer.
type Layout struct {
	Width, Height int

	TitleY int
	Board  [wordle.MaxAttempts][wordle.WordLength]core.Rect
	Keys   []Key
	ToastY int
}

// NewLayout computes the layout for a width x height terminal, centering
// the game horizontally and vertically.
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	area := height - 1 // help footer
	top := core.Clamp((area-(MinHeight-1))/2, 0, area)
	l.TitleY = top

	boardW := wordle.WordLength*tileW + (wordle.WordLength-1)*tileGap
	bx := (width - boardW) / 2
	for row := range wordle.MaxAttempts {
		y := top + boardTop + row*(1+rowGap)
		for col := range wordle.WordLength {
			l.Board[row][col] = core.NewRect(bx+col*(tileW+tileGap), y, tileW, 1)
		}
	}

	ky := l.Board[wordle.MaxAttempts-1][0].Bottom() + rowGap
	for i, row := range keyboardRows {
		y := ky + i*(1+rowGap)
		x := (width - rowWidth(row)) / 2
		for _, id := range row {
			w := keyWidth(id)
			l.Keys = append(l.Keys, Key{ID: id, Label: keyLabel(id, w), Rect: core.NewRect(x, y, w, 1)})
			x += w + keyGap
		}
	}

	l.ToastY = l.Keys[len(l.Keys)-1].Rect.Bottom() + rowGap
	return l
}

// TooSmall reports whether the terminal cannot fit the game.
func (l Layout) TooSmall() bool {
	return l.Width < MinWidth || l.Height < MinHeight
}

// KeyAt returns the identifier of the key under (x, y).
func (l Layout) KeyAt(x, y int) (string, bool) {
	for _, k := range l.Keys {
		if k.Rect.Contains(x, y) {
			return k.ID, true
		}
	}
	return "", false
}

func keyWidth(id string) int {
	switch id {
	case wordle.KeyEnter:
		return enterW
	case wordle.KeyBackspace:
		return deleteW
	default:
		return letterW
	}
}

func keyLabel(id string, w int) string {
	label := id
	switch id {
	case wordle.KeyEnter:
		label = "ENTER"
	case wordle.KeyBackspace:
		label = "DEL"
	}
	return center(label, w)
}

func rowWidth(row []string) int {
	w := (len(row) - 1) * keyGap
	for _, id := range row {
		w += keyWidth(id)
	}
	return w
}

// center pads s with spaces to width w.
func center(s string, w int) string {
	pad := w - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	out := make([]byte, 0, w)
	for range left {
		out = append(out, ' ')
	}
	out = append(out, s...)
	for range pad - left {
		out = append(out, ' ')
	}
	return string(out)
}
