package wordle

// Attempt is one scored guess. It is a value type and never changes once
// created.
type Attempt struct {
	Guess    Word
	Statuses [WordLength]LetterStatus
}

// Solved reports whether every letter is in the correct position.
func (a Attempt) Solved() bool {
	for _, s := range a.Statuses {
		if s != LetterCorrect {
			return false
		}
	}
	return true
}

// Evaluate scores guess against target.
//
// Exact matches are resolved first and consume their target position.
// Each remaining guess position, left to right, then consumes the first
// unconsumed target position holding the same letter and is marked
// present; when none is left it is marked absent. A letter guessed more
// often than it remains in the target is therefore absent for the excess.
func Evaluate(guess, target Word) Attempt {
	a := Attempt{Guess: guess}
	var consumed [WordLength]bool

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			a.Statuses[i] = LetterCorrect
			consumed[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if a.Statuses[i] == LetterCorrect {
			continue
		}
		a.Statuses[i] = LetterAbsent
		for j := 0; j < WordLength; j++ {
			if !consumed[j] && target[j] == guess[i] {
				a.Statuses[i] = LetterPresent
				consumed[j] = true
				break
			}
		}
	}

	return a
}

// KeyStatuses holds the aggregate status of every keyboard key, indexed by
// letter. The zero value has every key unused.
type KeyStatuses [26]KeyStatus

// Get returns the status of the key for letter ch.
// Non-letters report KeyUnused.
func (k KeyStatuses) Get(ch byte) KeyStatus {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if !isLetter(ch) {
		return KeyUnused
	}
	return k[ch-'A']
}

// Apply upgrades each guessed letter's key to the best status it reached in
// a. Keys are never downgraded.
func (k *KeyStatuses) Apply(a Attempt) {
	for i, ch := range a.Guess {
		if !isLetter(ch) {
			continue
		}
		next := keyStatusFor(a.Statuses[i])
		if next > k[ch-'A'] {
			k[ch-'A'] = next
		}
	}
}

// Map returns the statuses of all keys that have been used, keyed by
// uppercase letter.
func (k KeyStatuses) Map() map[byte]KeyStatus {
	m := make(map[byte]KeyStatus)
	for i, s := range k {
		if s != KeyUnused {
			m[byte('A'+i)] = s
		}
	}
	return m
}
