// Package tui is the Bubble Tea front-end for the game: key and mouse input,
// board and keyboard drawing, toasts, and the SSH server.
package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Options configures a Model.
type Options struct {
	Words   wordle.WordSource
	Config  config.Config
	Runtime core.RuntimeConfig

	// Logger receives debug and info events. Nil discards them.
	Logger *log.Logger
	// Bell receives the terminal bell for rejected guesses. Nil disables it.
	Bell io.Writer
	// Renderer styles output; SSH sessions pass their own.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one game session. It is the renderer
// and notifier of its controller, so it must be used through a pointer.
type Model struct {
	words  wordle.WordSource
	ctrl   *wordle.Controller
	logger *log.Logger
	bell   io.Writer
	sound  bool

	screen *core.Screen
	layout Layout
	theme  *Theme
	keys   KeyMap
	help   help.Model
	toasts toasts

	snap        wordle.Snapshot
	pending     []wordle.Notice
	showHistory bool
	history     table.Model
	quitting    bool
}

var (
	_ wordle.Renderer = (*Model)(nil)
	_ wordle.Notifier = (*Model)(nil)
)

// NewModel creates a session with a freshly picked target.
func NewModel(opts Options) *Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		words:  opts.Words,
		logger: logger,
		bell:   opts.Bell,
		sound:  opts.Config.Sound,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		layout: NewLayout(cfg.ScreenW, cfg.ScreenH),
		theme:  NewTheme(opts.Config.Theme, opts.Renderer),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		toasts: newToasts(opts.Config.Toast.Duration()),
	}
	m.help.Width = cfg.ScreenW

	m.ctrl = wordle.NewController(
		m.newState(),
		wordle.WithRenderer(m),
		wordle.WithNotifier(m),
		wordle.WithRand(rand.New(rand.NewSource(cfg.Seed))),
	)
	return m
}

func (m *Model) newState() *wordle.State {
	s := wordle.NewFromSource(m.words)
	m.logger.Debug("target chosen", "target", s.Target())
	return s
}

// Render implements wordle.Renderer.
func (m *Model) Render(snap wordle.Snapshot) {
	m.snap = snap
	m.keys.NewGame.SetEnabled(snap.Status.Terminal())
	if m.showHistory {
		m.history = newHistoryTable(m.ctrl.State().History(), m.theme)
	}
}

// Notify implements wordle.Notifier. Notices are queued and turned into
// toasts and commands by the current Update.
func (m *Model) Notify(n wordle.Notice) {
	m.pending = append(m.pending, n)
}

// Init posts the welcome notice and draws the empty board.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start()
	return m.flush()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.NewGame):
		return m.newGame()
	case key.Matches(msg, m.keys.History):
		m.toggleHistory()
		return nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return nil
	}

	id, ok := KeyIdentifier(msg)
	if !ok {
		return nil
	}
	return m.press(id)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.showHistory || m.layout.TooSmall() {
		return nil
	}
	id, ok := m.layout.KeyAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	return m.press(id)
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.screen.Resize(msg.Width, msg.Height-1)
	m.layout = NewLayout(msg.Width, msg.Height)
	m.help.Width = msg.Width
}

// press sends a key identifier to the controller.
func (m *Model) press(id string) tea.Cmd {
	out := m.ctrl.HandleKey(id)
	m.logger.Debug("key",
		"key", out.Key,
		"command", out.Command.Kind,
		"result", out.Result,
		"current", m.snap.Current,
	)
	if out.Attempt != nil && out.Status.Terminal() {
		m.logger.Info("game over",
			"status", out.Status,
			"attempts", m.snap.Attempts,
			"target", m.ctrl.State().Target(),
		)
	}
	return m.flush()
}

// flush turns queued notices into toasts and cue commands.
func (m *Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.pending {
		cmds = append(cmds, m.toasts.push(n))
		cmds = append(cmds, m.cue(n.Sound))
	}
	m.pending = m.pending[:0]
	return tea.Batch(cmds...)
}

// cue plays a notice's sound. Only the invalid cue has a terminal
// equivalent; the rest are logged.
func (m *Model) cue(s wordle.Sound) tea.Cmd {
	switch s {
	case wordle.SoundNone:
		return nil
	case wordle.SoundInvalid:
		if m.sound && m.bell != nil {
			return bellCmd(m.bell)
		}
	}
	m.logger.Debug("sound cue skipped", "sound", s)
	return nil
}

func (m *Model) newGame() tea.Cmd {
	m.toasts.clear()
	m.ctrl.Reset(m.newState())
	return m.flush()
}

func (m *Model) toggleHistory() {
	m.showHistory = !m.showHistory
	if m.showHistory {
		m.history = newHistoryTable(m.ctrl.State().History(), m.theme)
	}
}

// saveScreenshot writes the current board as plain text under
// ~/.wordle/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".wordle", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("wordle_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View() + "\n\n" + m.help.View(m.keys)
	}

	m.draw()
	return RenderScreen(m.screen, m.theme) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the last rendered game state.
func (m *Model) Snapshot() wordle.Snapshot {
	return m.snap
}

// Toasts returns the visible toast texts, newest first.
func (m *Model) Toasts() []string {
	return m.toasts.texts()
}

// Run starts an interactive session on the local terminal.
func Run(opts Options) error {
	if opts.Bell == nil {
		opts.Bell = os.Stdout
	}

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
