// Package words provides the answer and allowed-guess lists that feed the
// game: random target selection and case-insensitive guess validation.
//
// Two lists are kept apart. Answers are the words a target may be drawn
// from; allowed guesses are every word a player may submit. Answers are
// always accepted as guesses.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

//go:embed data/answers.txt
var embeddedAnswers string

//go:embed data/allowed.txt
var embeddedAllowed string

// ErrNoAnswers is returned when no valid answer word was loaded.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Environment variables consulted by FromEnv.
const (
	EnvAnswersFile = "WORDS_ANSWERS_FILE"
	EnvAllowedFile = "WORDS_ALLOWED_FILE"
)

// List is a WordSource backed by in-memory word lists.
// It is safe for concurrent use.
type List struct {
	answers []string
	allowed map[string]struct{}
	answer  map[string]struct{}

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

var _ wordle.WordSource = (*List)(nil)

// New builds a List from raw word lists. Entries are lowercased and
// anything that is not five letters a-z is dropped. Answers are added to
// the allowed set.
func New(answers, allowed []string, rng *rand.Rand) (*List, error) {
	if rng == nil {
		return nil, errors.New("words: nil random source")
	}

	l := &List{
		answers: normalize(answers),
		rng:     rng,
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}

	l.answer = toSet(l.answers)
	l.allowed = toSet(l.answers)
	for _, w := range normalize(allowed) {
		l.allowed[w] = struct{}{}
	}

	return l, nil
}

// Default returns a List built from the embedded word lists.
func Default(rng *rand.Rand) (*List, error) {
	return New(splitLines(embeddedAnswers), splitLines(embeddedAllowed), rng)
}

// PickTarget returns a uniformly random answer.
func (l *List) PickTarget() wordle.Word {
	l.mu.Lock()
	i := l.rng.Intn(len(l.answers))
	l.mu.Unlock()

	// Entries are validated in New, so this cannot fail.
	return wordle.MustParseWord(l.answers[i])
}

// IsValidGuess reports whether word is an answer or an allowed guess.
func (l *List) IsValidGuess(word string) bool {
	_, ok := l.allowed[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// IsAnswer reports whether word may be chosen as a target.
func (l *List) IsAnswer(word string) bool {
	_, ok := l.answer[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// Stats returns the number of answers and the number of accepted guesses.
func (l *List) Stats() (answers int, allowed int) {
	return len(l.answers), len(l.allowed)
}

// LoadOptions selects where word lists come from.
type LoadOptions struct {
	AnswersFile string
	AllowedFile string
}

// FromEnv fills empty fields from WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE.
func (o LoadOptions) FromEnv() LoadOptions {
	if o.AnswersFile == "" {
		o.AnswersFile = os.Getenv(EnvAnswersFile)
	}
	if o.AllowedFile == "" {
		o.AllowedFile = os.Getenv(EnvAllowedFile)
	}
	return o
}

// Load builds a List according to opts:
//
//   - both files set: answers from AnswersFile, guesses from AllowedFile
//   - only AllowedFile set: that file serves as both lists
//   - only AnswersFile set: answers from the file, guesses from the embedded list
//   - neither set: the embedded lists
func Load(opts LoadOptions, rng *rand.Rand) (*List, error) {
	var answers, allowed []string

	switch {
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		var err error
		if answers, err = readWordFile(opts.AnswersFile); err != nil {
			return nil, err
		}
		if allowed, err = readWordFile(opts.AllowedFile); err != nil {
			return nil, err
		}

	case opts.AllowedFile != "":
		var err error
		if allowed, err = readWordFile(opts.AllowedFile); err != nil {
			return nil, err
		}
		answers = allowed

	case opts.AnswersFile != "":
		var err error
		if answers, err = readWordFile(opts.AnswersFile); err != nil {
			return nil, err
		}
		allowed = splitLines(embeddedAllowed)

	default:
		return Default(rng)
	}

	return New(answers, allowed, rng)
}

// readWordFile reads one word per line.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// normalize lowercases, trims, drops invalid entries and duplicates,
// preserving order.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != wordle.WordLength || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
