package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

type toast struct {
	id     int
	notice wordle.Notice
}

// toasts is the on-screen message stack, newest first.
type toasts struct {
	items  []toast
	nextID int
	ttl    time.Duration
}

func newToasts(ttl time.Duration) toasts {
	return toasts{ttl: ttl}
}

// push adds a toast for n. Non-sticky toasts get an expiry command.
func (t *toasts) push(n wordle.Notice) tea.Cmd {
	t.nextID++
	t.items = append([]toast{{id: t.nextID, notice: n}}, t.items...)
	if n.Sticky() {
		return nil
	}
	return expireCmd(t.nextID, t.ttl)
}

// expire removes the toast with the given id, if still present.
func (t *toasts) expire(id int) {
	for i, it := range t.items {
		if it.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// clear drops every toast, sticky ones included.
func (t *toasts) clear() {
	t.items = nil
}

// texts returns the toast texts, newest first.
func (t *toasts) texts() []string {
	out := make([]string, len(t.items))
	for i, it := range t.items {
		out[i] = it.notice.Text
	}
	return out
}
