// Package wordle implements the core of a five-letter word guessing game:
// guess evaluation, the turn-based game state machine, and the input
// controller that turns key identifiers into state operations.
//
// The package has no terminal or rendering dependencies. Presentation is
// reached only through the Renderer and Notifier interfaces.
package wordle

import (
	"fmt"
	"strings"
)

const (
	// WordLength is the number of letters in every target and guess.
	WordLength = 5

	// MaxAttempts is the number of guesses allowed before the game is lost.
	MaxAttempts = 6
)

// Word is a fixed-length sequence of uppercase letters A-Z.
type Word [WordLength]byte

// ParseWord normalizes s to uppercase and validates it as a Word.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != WordLength {
		return w, fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidWord, s, len(s), WordLength)
	}
	for i := 0; i < WordLength; i++ {
		if !isLetter(s[i]) {
			return w, fmt.Errorf("%w: %q contains %q", ErrInvalidWord, s, s[i])
		}
		w[i] = s[i]
	}
	return w, nil
}

// MustParseWord is like ParseWord but panics on invalid input.
// Intended for literals and tests.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns the word in uppercase.
func (w Word) String() string {
	return string(w[:])
}

// Lower returns the word in lowercase, the form dictionaries are keyed by.
func (w Word) Lower() string {
	return strings.ToLower(w.String())
}

// isLetter reports whether b is an uppercase ASCII letter.
func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// Dictionary validates whether a guess is an accepted word.
// Comparison is case-insensitive.
type Dictionary interface {
	IsValidGuess(word string) bool
}

// WordSource supplies the target word and the dictionary of accepted guesses.
type WordSource interface {
	Dictionary
	PickTarget() Word
}
