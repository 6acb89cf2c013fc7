package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
)

var flagSeed int64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  A-Z        - Type a letter
  Backspace  - Delete a letter
  Enter      - Submit the guess
  Mouse      - Click keys on the on-screen keyboard
  Tab        - Show this game's guesses
  Ctrl+N     - New game (after a win or loss)
  Ctrl+S     - Save a screenshot to ~/.wordle/screenshots
  Esc/Ctrl+C - Quit

Logs are discarded unless --log-file is set.

Examples:
  wordle play
  wordle play --seed 42
  wordle play --answers ./answers.txt --allowed ./allowed.txt
  wordle play --log-file wordle.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	list, err := loadWords(cfg, flagSeed)
	if err != nil {
		exitf("%v", err)
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger, closer, err := newLogger(io.Discard, "wordle")
	if err != nil {
		exitf("%v", err)
	}
	defer closer.Close()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.Seed = flagSeed

	answers, allowed := list.Stats()
	logger.Debug("word lists loaded", "answers", answers, "allowed", allowed)

	runErr := tui.Run(tui.Options{
		Words:   list,
		Config:  cfg,
		Runtime: rc,
		Logger:  logger,
	})
	if runErr != nil {
		closer.Close()
		exitf("running game: %v", runErr)
	}
}
