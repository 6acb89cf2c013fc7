package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// fixedWords always picks the same target and accepts a fixed set.
type fixedWords struct {
	target  string
	allowed map[string]bool
}

func (f fixedWords) PickTarget() wordle.Word { return wordle.MustParseWord(f.target) }
func (f fixedWords) IsValidGuess(w string) bool { return f.allowed[strings.ToLower(w)] }

var testWords = fixedWords{
	target: "crane",
	allowed: map[string]bool{
		"crane": true, "trace": true, "slate": true, "pious": true,
		"dumpy": true, "wight": true, "block": true, "fjord": true,
	},
}

func newTestModel(t *testing.T) (*Model, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Toast.DurationMS = 1

	bell := &bytes.Buffer{}
	m := NewModel(Options{
		Words:   testWords,
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Bell:    bell,
	})
	m.Init()
	return m, bell
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeGuess(m *Model, word string) tea.Cmd {
	for _, r := range word {
		send(m, runeKey(r))
	}
	return send(m, tea.KeyMsg{Type: tea.KeyEnter})
}

// collect runs cmd and any batched commands, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestModelStartsWithWelcome(t *testing.T) {
	m, _ := newTestModel(t)

	if got := m.Toasts(); len(got) != 1 || got[0] != wordle.WelcomeText {
		t.Errorf("Toasts() = %v, want welcome", got)
	}
	if m.Snapshot().Status != wordle.GameInProgress {
		t.Errorf("status = %v, want playing", m.Snapshot().Status)
	}
}

func TestModelTyping(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, runeKey('c'), runeKey('r'), runeKey('1'), tea.KeyMsg{Type: tea.KeyBackspace}, runeKey('a'))

	if got := m.Snapshot().Current; got != "CA" {
		t.Errorf("Current = %q, want CA", got)
	}
	if got := m.Snapshot().Board[0][1]; got.Letter != 'A' || got.Status != wordle.LetterFilled {
		t.Errorf("Board[0][1] = %+v, want filled A", got)
	}
}

func TestModelShortGuessRingsBell(t *testing.T) {
	m, bell := newTestModel(t)

	cmd := typeGuess(m, "cra")
	if m.Toasts()[0] != wordle.NotEnoughLettersText {
		t.Errorf("newest toast = %q, want %q", m.Toasts()[0], wordle.NotEnoughLettersText)
	}

	msgs := collect(cmd)
	if bell.String() != "\a" {
		t.Errorf("bell output = %q, want BEL", bell.String())
	}

	// The expiry tick removes the toast again.
	for _, msg := range msgs {
		send(m, msg)
	}
	for _, text := range m.Toasts() {
		if text == wordle.NotEnoughLettersText {
			t.Error("toast should have expired")
		}
	}
}

func TestModelSoundDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sound = false
	cfg.Toast.DurationMS = 1
	bell := &bytes.Buffer{}
	m := NewModel(Options{Words: testWords, Config: cfg, Runtime: core.DefaultConfig(), Bell: bell})
	m.Init()

	collect(typeGuess(m, "qwert"))
	if bell.Len() != 0 {
		t.Errorf("bell rang with sound disabled: %q", bell.String())
	}
}

func TestModelUnknownWord(t *testing.T) {
	m, _ := newTestModel(t)

	typeGuess(m, "qwert")

	if m.Toasts()[0] != wordle.UnknownWordText {
		t.Errorf("newest toast = %q, want ???", m.Toasts()[0])
	}
	if m.Snapshot().Current != "QWERT" {
		t.Errorf("Current = %q, want QWERT kept", m.Snapshot().Current)
	}
}

func TestModelWinIsSticky(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := typeGuess(m, "crane")

	snap := m.Snapshot()
	if snap.Status != wordle.GameWon {
		t.Fatalf("status = %v, want won", snap.Status)
	}
	if !isWinMessage(m.Toasts()[0]) {
		t.Errorf("newest toast = %q, want a win message", m.Toasts()[0])
	}
	for _, msg := range collect(cmd) {
		if _, ok := msg.(toastExpiredMsg); ok {
			t.Error("win toast should not expire")
		}
	}

	// Input is ignored after the game ends.
	send(m, runeKey('a'))
	if m.Snapshot().Current != "" {
		t.Error("typing after a win should be ignored")
	}
}

func isWinMessage(s string) bool {
	for _, w := range wordle.WinMessages {
		if s == w {
			return true
		}
	}
	return false
}

func TestModelLossShowsTarget(t *testing.T) {
	m, _ := newTestModel(t)

	for _, g := range []string{"slate", "pious", "dumpy", "wight", "block", "fjord"} {
		typeGuess(m, g)
	}

	if m.Snapshot().Status != wordle.GameLost {
		t.Fatalf("status = %v, want lost", m.Snapshot().Status)
	}
	if m.Toasts()[0] != "CRANE" {
		t.Errorf("newest toast = %q, want CRANE", m.Toasts()[0])
	}
	if m.Snapshot().Answer != "CRANE" {
		t.Errorf("Answer = %q, want CRANE", m.Snapshot().Answer)
	}
}

func TestModelNewGameOnlyAfterEnd(t *testing.T) {
	m, _ := newTestModel(t)
	ctrlN := tea.KeyMsg{Type: tea.KeyCtrlN}

	typeGuess(m, "slate")
	send(m, ctrlN)
	if m.Snapshot().Attempts != 1 {
		t.Fatal("ctrl+n should do nothing mid-game")
	}

	typeGuess(m, "crane")
	send(m, ctrlN)

	snap := m.Snapshot()
	if snap.Status != wordle.GameInProgress || snap.Attempts != 0 {
		t.Errorf("after new game: status %v, attempts %d", snap.Status, snap.Attempts)
	}
	if got := m.Toasts(); len(got) != 1 || got[0] != wordle.WelcomeText {
		t.Errorf("Toasts() = %v, want only the welcome", got)
	}
}

func TestModelMouseClick(t *testing.T) {
	m, _ := newTestModel(t)
	click := func(id string) {
		for _, k := range m.layout.Keys {
			if k.ID == id {
				send(m, tea.MouseMsg{X: k.Rect.X, Y: k.Rect.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
				return
			}
		}
		t.Fatalf("no key %s", id)
	}

	for _, id := range []string{"T", "R", "A", "C", "E", wordle.KeyEnter} {
		click(id)
	}

	snap := m.Snapshot()
	if snap.Attempts != 1 {
		t.Fatalf("Attempts = %d, want 1 after clicking TRACE + Enter", snap.Attempts)
	}
	if snap.Keys.Get('T') != wordle.KeyAbsent {
		t.Errorf("key T = %v, want absent", snap.Keys.Get('T'))
	}

	// Release events and right clicks are ignored.
	k := m.layout.Keys[0]
	send(m,
		tea.MouseMsg{X: k.Rect.X, Y: k.Rect.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: k.Rect.X, Y: k.Rect.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	)
	if m.Snapshot().Current != "" {
		t.Errorf("Current = %q, want empty", m.Snapshot().Current)
	}
}

func TestModelViewDrawsBoard(t *testing.T) {
	m, _ := newTestModel(t)
	typeGuess(m, "trace")

	m.draw()
	text := m.screen.String()

	for _, want := range []string{title, "ENTER", "DEL", wordle.WelcomeText} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}

	r := m.layout.Board[0][2]
	cx, _ := r.Center()
	cell := m.screen.GetCell(cx, r.Y)
	if cell.Rune != 'A' || cell.Style != tileStyle(wordle.LetterCorrect) {
		t.Errorf("tile (0,2) = %+v, want correct A", cell)
	}

	if out := m.View(); out == "" {
		t.Error("View() returned nothing")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 30, Height: 10})

	m.draw()
	if !strings.Contains(m.screen.String(), resizeMsg) {
		t.Errorf("screen = %q, want resize message", m.screen.String())
	}

	send(m, tea.WindowSizeMsg{Width: MinWidth, Height: MinHeight})
	m.draw()
	if strings.Contains(m.screen.String(), resizeMsg) {
		t.Error("resize message should go away at minimum size")
	}
}

func TestModelHistoryView(t *testing.T) {
	m, _ := newTestModel(t)
	typeGuess(m, "slate")

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	if !strings.Contains(view, "SLATE") {
		t.Errorf("history view missing SLATE:\n%s", view)
	}

	// Typing still works while the table is shown.
	typeGuess(m, "trace")
	if !strings.Contains(m.View(), "TRACE") {
		t.Error("history view should refresh after a guess")
	}

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(m.View(), "Hits") {
		t.Error("second tab should return to the board")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestPattern(t *testing.T) {
	a := wordle.Evaluate(wordle.MustParseWord("TRACE"), wordle.MustParseWord("CRANE"))
	if got := pattern(a); got != "· ■ ■ □ ■" {
		t.Errorf("pattern() = %q", got)
	}
}

func TestToastsOrderAndExpiry(t *testing.T) {
	ts := newToasts(time.Millisecond)

	if ts.push(wordle.Notice{Kind: wordle.NoticeUnknownWord, Text: "one"}) == nil {
		t.Error("transient toast should schedule expiry")
	}
	ts.push(wordle.Notice{Kind: wordle.NoticeNotEnoughLetters, Text: "two"})
	if ts.push(wordle.Notice{Kind: wordle.NoticeWon, Text: "won"}) != nil {
		t.Error("sticky toast should not schedule expiry")
	}

	if got := strings.Join(ts.texts(), ","); got != "won,two,one" {
		t.Fatalf("texts() = %s, want newest first", got)
	}

	ts.expire(1)
	ts.expire(99)
	if got := strings.Join(ts.texts(), ","); got != "won,two" {
		t.Errorf("after expire: %s", got)
	}

	ts.clear()
	if len(ts.texts()) != 0 {
		t.Error("clear() should drop sticky toasts too")
	}
}
