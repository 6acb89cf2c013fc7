package wordle

// LetterStatus is the status of a single board cell.
type LetterStatus int

const (
	LetterEmpty   LetterStatus = iota // No letter typed
	LetterFilled                      // Typed but not yet submitted
	LetterCorrect                     // Right letter, right position
	LetterPresent                     // Letter is in the target at another position
	LetterAbsent                      // Letter is not in the target (with the given multiplicity)
)

// String returns a lowercase name for the status.
func (s LetterStatus) String() string {
	switch s {
	case LetterEmpty:
		return "empty"
	case LetterFilled:
		return "filled"
	case LetterCorrect:
		return "correct"
	case LetterPresent:
		return "present"
	case LetterAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// KeyStatus is the aggregate status of a keyboard key across all attempts.
// Values are ordered so that a better status compares greater.
type KeyStatus int

const (
	KeyUnused KeyStatus = iota
	KeyAbsent
	KeyPresent
	KeyCorrect
)

// String returns a lowercase name for the key status.
func (k KeyStatus) String() string {
	switch k {
	case KeyUnused:
		return "unused"
	case KeyAbsent:
		return "absent"
	case KeyPresent:
		return "present"
	case KeyCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// keyStatusFor converts a scored letter status to its key status.
func keyStatusFor(s LetterStatus) KeyStatus {
	switch s {
	case LetterCorrect:
		return KeyCorrect
	case LetterPresent:
		return KeyPresent
	case LetterAbsent:
		return KeyAbsent
	default:
		return KeyUnused
	}
}

// GameStatus is the terminal flag of a game.
type GameStatus int

const (
	GameInProgress GameStatus = iota
	GameWon
	GameLost
)

// String returns a lowercase name for the game status.
func (s GameStatus) String() string {
	switch s {
	case GameInProgress:
		return "playing"
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s GameStatus) Terminal() bool {
	return s == GameWon || s == GameLost
}
