package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list statistics",
	Long: `Show how many answers and allowed guesses are loaded.

Lists come from --answers/--allowed, the config file, the
WORDS_ANSWERS_FILE/WORDS_ALLOWED_FILE environment variables, or the
built-in lists, in that order.`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

var wordsCheckCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "Check whether a word is accepted as a guess",
	Long: `Report whether <word> is an allowed guess and whether it can be an answer.
Exits with status 1 if the word is not allowed.`,
	Args: cobra.ExactArgs(1),
	Run:  runWordsCheck,
}

func init() {
	wordsCmd.AddCommand(wordsCheckCmd)
}

func runWords(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	list, err := loadWords(cfg, 0)
	if err != nil {
		exitf("%v", err)
	}

	answers, allowed := list.Stats()
	fmt.Printf("  %-16s %d\n", "Answers", answers)
	fmt.Printf("  %-16s %d\n", "Allowed guesses", allowed)
}

func runWordsCheck(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	list, err := loadWords(cfg, 0)
	if err != nil {
		exitf("%v", err)
	}

	word := args[0]
	switch {
	case list.IsAnswer(word):
		fmt.Printf("%s: allowed (possible answer)\n", word)
	case list.IsValidGuess(word):
		fmt.Printf("%s: allowed\n", word)
	default:
		fmt.Printf("%s: not in word list\n", word)
		os.Exit(1)
	}
}
