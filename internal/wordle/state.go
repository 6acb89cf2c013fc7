package wordle

// Cell is one tile of the board as seen by a renderer.
type Cell struct {
	Letter byte // 0 when empty
	Status LetterStatus
}

// Snapshot is a read-only copy of a game for rendering.
type Snapshot struct {
	Board    [MaxAttempts][WordLength]Cell
	Keys     KeyStatuses
	Attempts int    // Number of submitted guesses
	Current  string // In-progress word
	Status   GameStatus
	Answer   string // Target word, only set once the game is lost
}

// State is the state of a single game session: the target, the attempt
// history, the in-progress word, and the terminal flag.
//
// All mutation goes through AppendLetter, DeleteLetter and SubmitGuess.
// Once the game is won or lost every operation returns ErrIgnored.
type State struct {
	target  Word
	dict    Dictionary
	history []Attempt
	current []byte
	keys    KeyStatuses
	status  GameStatus
}

// New creates a game for target, validating guesses against dict.
func New(target Word, dict Dictionary) *State {
	return &State{
		target:  target,
		dict:    dict,
		history: make([]Attempt, 0, MaxAttempts),
		current: make([]byte, 0, WordLength),
	}
}

// NewFromSource creates a game with a target picked from src.
func NewFromSource(src WordSource) *State {
	return New(src.PickTarget(), src)
}

// AppendLetter adds ch to the current word.
// Lowercase letters are accepted and stored uppercase.
func (s *State) AppendLetter(ch rune) error {
	if s.status.Terminal() || len(s.current) >= WordLength {
		return ErrIgnored
	}
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return ErrIgnored
	}
	s.current = append(s.current, byte(ch))
	return nil
}

// DeleteLetter removes the last letter of the current word.
func (s *State) DeleteLetter() error {
	if s.status.Terminal() || len(s.current) == 0 {
		return ErrIgnored
	}
	s.current = s.current[:len(s.current)-1]
	return nil
}

// SubmitGuess scores the current word against the target and records it.
// On error, history and the current word are left untouched.
func (s *State) SubmitGuess() (Attempt, error) {
	if s.status.Terminal() {
		return Attempt{}, ErrIgnored
	}
	if len(s.current) != WordLength {
		return Attempt{}, ErrInvalidLength
	}

	var guess Word
	copy(guess[:], s.current)
	if s.dict == nil || !s.dict.IsValidGuess(guess.Lower()) {
		return Attempt{}, ErrNotInDictionary
	}

	attempt := Evaluate(guess, s.target)
	s.history = append(s.history, attempt)
	s.keys.Apply(attempt)
	s.current = s.current[:0]

	switch {
	case guess == s.target:
		s.status = GameWon
	case len(s.history) >= MaxAttempts:
		s.status = GameLost
	}

	return attempt, nil
}

// Status returns the current game status.
func (s *State) Status() GameStatus {
	return s.status
}

// Terminal reports whether the game is won or lost.
func (s *State) Terminal() bool {
	return s.status.Terminal()
}

// Target returns the word being guessed.
func (s *State) Target() Word {
	return s.target
}

// Current returns the in-progress word.
func (s *State) Current() string {
	return string(s.current)
}

// History returns a copy of the submitted attempts, oldest first.
func (s *State) History() []Attempt {
	out := make([]Attempt, len(s.history))
	copy(out, s.history)
	return out
}

// Keys returns the aggregate keyboard statuses.
func (s *State) Keys() KeyStatuses {
	return s.keys
}

// Snapshot builds a read-only view of the game for renderers.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Keys:     s.keys,
		Attempts: len(s.history),
		Current:  string(s.current),
		Status:   s.status,
	}

	for row, a := range s.history {
		for col := range WordLength {
			snap.Board[row][col] = Cell{Letter: a.Guess[col], Status: a.Statuses[col]}
		}
	}

	if row := len(s.history); row < MaxAttempts {
		for col, ch := range s.current {
			snap.Board[row][col] = Cell{Letter: ch, Status: LetterFilled}
		}
	}

	if s.status == GameLost {
		snap.Answer = s.target.String()
	}

	return snap
}
