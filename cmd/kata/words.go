package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jward/kata"
	"github.com/spf13/cobra"
)

var flagTop int

var wordsCmd = &cobra.Command{
	Use:   "words [FILE]",
	Short: "Count word occurrences in a file or stdin",
	Long: `Count case-insensitive word occurrences in FILE, or in stdin when no FILE
is given. Output is sorted by count descending, ties broken alphabetically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagTop, "top", 0, "limit output to the N most frequent words (0 = all)")
}

func runWords(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return outputError("words", err)
	}

	counts := kata.WordCount(text)
	freqs := kata.TopWords(counts, flagTop)

	words := make([]CLIWord, len(freqs))
	for i, f := range freqs {
		words[i] = CLIWord{Word: f.Word, Count: f.Count}
	}

	distinct := len(counts)
	return outputResult(CLIResult{
		Command:    "words",
		Results:    words,
		TotalCount: &distinct,
	})
}

// readInput returns the contents of the optional FILE argument, or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
