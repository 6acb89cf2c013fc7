package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%s) failed: %v", path, err)
	}
	return path
}

func TestNewNormalizes(t *testing.T) {
	l, err := New(
		[]string{" CRANE ", "crane", "toolong", "c4ane", "", "Slate"},
		[]string{"trace", "abc", "TRACE"},
		testRand(),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	answers, allowed := l.Stats()
	if answers != 2 {
		t.Errorf("answers = %d, want 2", answers)
	}
	if allowed != 3 {
		t.Errorf("allowed = %d, want 3 (answers + trace)", allowed)
	}
}

func TestNewRequiresAnswers(t *testing.T) {
	_, err := New([]string{"nope", "12345"}, []string{"crane"}, testRand())
	if !errors.Is(err, ErrNoAnswers) {
		t.Errorf("New() error = %v, want ErrNoAnswers", err)
	}
}

func TestNewRequiresRand(t *testing.T) {
	if _, err := New([]string{"crane"}, nil, nil); err == nil {
		t.Error("New() with nil rand should fail")
	}
}

func TestIsValidGuessCaseInsensitive(t *testing.T) {
	l, err := New([]string{"crane"}, []string{"trace"}, testRand())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"crane", true},
		{"CRANE", true},
		{"Trace", true},
		{"slate", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := l.IsValidGuess(tt.word); got != tt.want {
			t.Errorf("IsValidGuess(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}

	if l.IsAnswer("trace") {
		t.Error("allowed-only word should not be an answer")
	}
	if !l.IsAnswer("CRANE") {
		t.Error("CRANE should be an answer")
	}
}

func TestPickTargetFromAnswersOnly(t *testing.T) {
	l, err := New([]string{"crane", "slate", "trace"}, []string{"pious", "nymph"}, testRand())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	seen := map[string]int{}
	for range 300 {
		w := l.PickTarget()
		if !l.IsAnswer(w.String()) {
			t.Fatalf("PickTarget() = %s, not an answer", w)
		}
		seen[w.String()]++
	}

	// With 300 draws over 3 answers every answer should appear.
	if len(seen) != 3 {
		t.Errorf("PickTarget() drew %d distinct answers, want 3: %v", len(seen), seen)
	}
}

func TestPickTargetDeterministicWithSeed(t *testing.T) {
	a, _ := Default(rand.New(rand.NewSource(99)))
	b, _ := Default(rand.New(rand.NewSource(99)))

	for range 10 {
		if x, y := a.PickTarget(), b.PickTarget(); x != y {
			t.Fatalf("same seed produced %s and %s", x, y)
		}
	}
}

func TestDefaultLists(t *testing.T) {
	l, err := Default(testRand())
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	answers, allowed := l.Stats()
	if answers == 0 {
		t.Fatal("embedded answers list is empty")
	}
	if allowed <= answers {
		t.Errorf("allowed (%d) should exceed answers (%d)", allowed, answers)
	}
	if !l.IsValidGuess("crane") {
		t.Error("crane should be accepted")
	}
}

func TestLoadBothFiles(t *testing.T) {
	dir := t.TempDir()
	opts := LoadOptions{
		AnswersFile: writeFile(t, dir, "answers.txt", "crane\nslate\n"),
		AllowedFile: writeFile(t, dir, "allowed.txt", "pious\n"),
	}

	l, err := Load(opts, testRand())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	answers, allowed := l.Stats()
	if answers != 2 || allowed != 3 {
		t.Errorf("Stats() = (%d, %d), want (2, 3)", answers, allowed)
	}
	if l.IsValidGuess("trace") {
		t.Error("embedded words should not leak in when both files are given")
	}
}

func TestLoadAllowedOnly(t *testing.T) {
	dir := t.TempDir()
	opts := LoadOptions{AllowedFile: writeFile(t, dir, "allowed.txt", "pious\nnymph\n")}

	l, err := Load(opts, testRand())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !l.IsAnswer("pious") || !l.IsAnswer("nymph") {
		t.Error("allowed file should double as the answers list")
	}
}

func TestLoadAnswersOnly(t *testing.T) {
	dir := t.TempDir()
	opts := LoadOptions{AnswersFile: writeFile(t, dir, "answers.txt", "zzzzz\n")}

	l, err := Load(opts, testRand())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := l.PickTarget().String(); got != "ZZZZZ" {
		t.Errorf("PickTarget() = %s, want ZZZZZ", got)
	}
	if !l.IsValidGuess("slate") {
		t.Error("embedded allowed list should back guesses")
	}
}

func TestLoadMissingFile(t *testing.T) {
	opts := LoadOptions{AllowedFile: filepath.Join(t.TempDir(), "missing.txt")}
	if _, err := Load(opts, testRand()); err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv(EnvAnswersFile, "/tmp/a.txt")
	t.Setenv(EnvAllowedFile, "/tmp/b.txt")

	got := LoadOptions{AnswersFile: "/custom.txt"}.FromEnv()
	if got.AnswersFile != "/custom.txt" {
		t.Errorf("AnswersFile = %q, explicit value should win", got.AnswersFile)
	}
	if got.AllowedFile != "/tmp/b.txt" {
		t.Errorf("AllowedFile = %q, want env value", got.AllowedFile)
	}
}
