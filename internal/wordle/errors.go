package wordle

import "errors"

var (
	// ErrIgnored is returned when an operation is silently rejected:
	// a non-letter key, a full or empty current word, or a finished game.
	ErrIgnored = errors.New("wordle: input ignored")

	// ErrInvalidLength is returned when a guess is submitted with fewer
	// than WordLength letters.
	ErrInvalidLength = errors.New("wordle: not enough letters")

	// ErrNotInDictionary is returned when a well-formed guess is not an
	// accepted word.
	ErrNotInDictionary = errors.New("wordle: word not in dictionary")

	// ErrInvalidWord is returned by ParseWord for malformed input.
	ErrInvalidWord = errors.New("wordle: invalid word")
)
