package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

var scoreCmd = &cobra.Command{
	Use:   "score <guess> <target>",
	Short: "Score a guess against a target word",
	Long: `Print the per-letter result of guessing <guess> when the answer is <target>.
Neither word has to be in the word lists.

Examples:
  wordle score trace crane   # T:absent R:correct A:correct C:present E:correct
  wordle score llama allow`,
	Args: cobra.ExactArgs(2),
	Run:  runScore,
}

func runScore(_ *cobra.Command, args []string) {
	guess, err := wordle.ParseWord(args[0])
	if err != nil {
		exitf("guess: %v", err)
	}
	target, err := wordle.ParseWord(args[1])
	if err != nil {
		exitf("target: %v", err)
	}

	fmt.Println(formatScore(wordle.Evaluate(guess, target)))
}

// formatScore renders an attempt as LETTER:status pairs.
func formatScore(a wordle.Attempt) string {
	parts := make([]string, wordle.WordLength)
	for i, s := range a.Statuses {
		parts[i] = fmt.Sprintf("%c:%s", a.Guess[i], s)
	}
	return strings.Join(parts, " ")
}
