package core

// Color is a palette slot for a screen cell. The platform layer maps slots
// to concrete terminal colors through its theme.
type Color uint8

// Palette slots.
const (
	ColorDefault Color = iota // terminal default
	ColorText
	ColorMuted
	ColorCorrect
	ColorPresent
	ColorAbsent
	ColorFilled
	ColorEmpty
	ColorUnused
	ColorInk // dark text drawn on top of a colored tile
)

// Style is a foreground/background color pair.
type Style struct {
	Fg Color
	Bg Color
}

// Plain is the terminal's default style.
var Plain = Style{}
