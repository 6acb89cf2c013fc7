package wordle

import (
	"errors"
	"math/rand"
	"time"
)

// Key identifiers understood by ParseKey besides single letters.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
)

// CommandKind is a discrete game command derived from a key.
type CommandKind int

const (
	CommandIgnore CommandKind = iota
	CommandAppend
	CommandDelete
	CommandSubmit
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandIgnore:
		return "Ignore"
	case CommandAppend:
		return "Append"
	case CommandDelete:
		return "Delete"
	case CommandSubmit:
		return "Submit"
	default:
		return "Unknown"
	}
}

// Command is a single request against the game state.
// Letter is set only for CommandAppend.
type Command struct {
	Kind   CommandKind
	Letter byte
}

// ParseKey maps a raw key identifier to a command. Anything other than
// Enter, Backspace, or a single letter (either case) is ignored.
func ParseKey(key string) Command {
	switch key {
	case KeyEnter:
		return Command{Kind: CommandSubmit}
	case KeyBackspace:
		return Command{Kind: CommandDelete}
	}
	if len(key) != 1 {
		return Command{Kind: CommandIgnore}
	}
	ch := key[0]
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if !isLetter(ch) {
		return Command{Kind: CommandIgnore}
	}
	return Command{Kind: CommandAppend, Letter: ch}
}

// Result classifies the outcome of a dispatched command.
type Result int

const (
	ResultApplied Result = iota
	ResultIgnored
	ResultInvalidLength
	ResultNotInDictionary
)

// String returns a lowercase name for the result.
func (r Result) String() string {
	switch r {
	case ResultApplied:
		return "applied"
	case ResultIgnored:
		return "ignored"
	case ResultInvalidLength:
		return "invalid_length"
	case ResultNotInDictionary:
		return "not_in_dictionary"
	default:
		return "unknown"
	}
}

// Outcome is what a dispatched command produced. It is handed to the
// presentation layer, which decides what to draw, play, or show.
type Outcome struct {
	Key     string
	Command Command
	Result  Result
	Attempt *Attempt // Set only for an accepted guess
	Status  GameStatus
	Notice  *Notice
}

// Renderer draws the game after every accepted command.
type Renderer interface {
	Render(snap Snapshot)
}

// Notifier shows user-facing messages and plays their cues.
type Notifier interface {
	Notify(n Notice)
}

// Controller dispatches commands to a single game state and reports every
// outcome to the presentation collaborators. It is not safe for concurrent
// use; each session owns its own controller.
type Controller struct {
	state    *State
	renderer Renderer
	notifier Notifier
	rng      *rand.Rand
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithRenderer sets the renderer called after every applied command.
func WithRenderer(r Renderer) ControllerOption {
	return func(c *Controller) { c.renderer = r }
}

// WithNotifier sets the notifier called for every notice.
func WithNotifier(n Notifier) ControllerOption {
	return func(c *Controller) { c.notifier = n }
}

// WithRand sets the random source used to pick win messages.
func WithRand(rng *rand.Rand) ControllerOption {
	return func(c *Controller) { c.rng = rng }
}

// NewController creates a controller for state.
func NewController(state *State, opts ...ControllerOption) *Controller {
	c := &Controller{state: state}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// State returns the game state the controller drives.
func (c *Controller) State() *State {
	return c.state
}

// Reset replaces the game state with a fresh session, renders it, and
// posts the welcome notice.
func (c *Controller) Reset(state *State) {
	c.state = state
	c.render()
	c.notify(welcomeNotice())
}

// Start renders the initial board and posts the welcome notice.
func (c *Controller) Start() {
	c.render()
	c.notify(welcomeNotice())
}

// HandleKey parses key and dispatches the resulting command.
func (c *Controller) HandleKey(key string) Outcome {
	out := c.Dispatch(ParseKey(key))
	out.Key = key
	return out
}

// Dispatch runs cmd against the game state. Rejections are reported in the
// returned Outcome; Dispatch never fails.
func (c *Controller) Dispatch(cmd Command) Outcome {
	out := Outcome{Command: cmd, Result: ResultIgnored}

	if c.state.Terminal() {
		out.Status = c.state.Status()
		return out
	}

	var err error
	switch cmd.Kind {
	case CommandAppend:
		err = c.state.AppendLetter(rune(cmd.Letter))
	case CommandDelete:
		err = c.state.DeleteLetter()
	case CommandSubmit:
		var a Attempt
		a, err = c.state.SubmitGuess()
		if err == nil {
			out.Attempt = &a
		}
	default:
		err = ErrIgnored
	}

	out.Result = resultFor(err)
	out.Status = c.state.Status()

	switch out.Result {
	case ResultInvalidLength:
		n := notEnoughLettersNotice()
		out.Notice = &n
	case ResultNotInDictionary:
		n := unknownWordNotice()
		out.Notice = &n
	case ResultApplied:
		switch out.Status {
		case GameWon:
			n := winNotice(c.rng)
			out.Notice = &n
		case GameLost:
			n := lossNotice(c.state.Target())
			out.Notice = &n
		}
	}

	if out.Result == ResultApplied {
		c.render()
	}
	if out.Notice != nil {
		c.notify(*out.Notice)
	}

	return out
}

// resultFor maps a state error to its result kind.
func resultFor(err error) Result {
	switch {
	case err == nil:
		return ResultApplied
	case errors.Is(err, ErrInvalidLength):
		return ResultInvalidLength
	case errors.Is(err, ErrNotInDictionary):
		return ResultNotInDictionary
	default:
		return ResultIgnored
	}
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.state.Snapshot())
	}
}

func (c *Controller) notify(n Notice) {
	if c.notifier != nil {
		c.notifier.Notify(n)
	}
}
