// wordle is a five-letter word guessing game for the terminal.
//
// Usage:
//
//	wordle play                  - Play a game in this terminal
//	wordle serve                 - Start an SSH server, one game per connection
//	wordle score <guess> <word>  - Print how a guess scores against a word
//	wordle words [check <word>]  - Inspect the word lists
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.wordle/config.yaml, then ./configs/wordle.yaml)
//	--answers <path>    - Answers list, one word per line
//	--allowed <path>    - Allowed guesses list, one word per line
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var (
	flagConfig   string
	flagAnswers  string
	flagAllowed  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Guess the five-letter word in six tries",
	Long: `wordle is a terminal word guessing game.

Type a five-letter word and press Enter. Each letter is scored:
  green  - right letter, right spot
  yellow - in the word, wrong spot
  gray   - not in the word

Available commands:
  play   - Play in this terminal
  serve  - Host games over SSH
  score  - Score a guess against a word
  words  - Show word list stats or check a word

Examples:
  wordle play
  wordle play --seed 42
  wordle serve --ssh :2222
  wordle score trace crane
  wordle words check crane`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAnswers, "answers", "", "Path to answers list (overrides config and WORDS_ANSWERS_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagAllowed, "allowed", "", "Path to allowed guesses list (overrides config and WORDS_ALLOWED_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(wordsCmd)
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagAnswers != "" {
		cfg.Words.AnswersFile = flagAnswers
	}
	if flagAllowed != "" {
		cfg.Words.AllowedFile = flagAllowed
	}
	return cfg, cfg.Validate()
}

// loadWords builds the word list. Flags beat config, config beats the
// environment. A zero seed uses the current time.
func loadWords(cfg config.Config, seed int64) (*words.List, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := words.LoadOptions{
		AnswersFile: cfg.Words.AnswersFile,
		AllowedFile: cfg.Words.AllowedFile,
	}.FromEnv()
	return words.Load(opts, rand.New(rand.NewSource(seed)))
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is set. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
