package main

import (
	"fmt"
	"os"

	"github.com/jward/kata/internal/config"
	"github.com/spf13/cobra"
)

var flagFormat string

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "kata",
	Short:         "Self-contained programming exercises",
	Long:          "Kata computes shape areas, word-occurrence counts, sums, and required-key checks for JSON objects.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConfigDefaults(cmd); err != nil {
			return err
		}
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: json|text (default: json, or format from config)")

	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(keysCmd)
}

// applyConfigDefaults fills flags the user left unset from .kata.yaml and
// KATA_-prefixed environment variables. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command) error {
	defaults, err := config.Load()
	if err != nil {
		return err
	}
	if flagFormat == "" {
		flagFormat = defaults.Format
	}
	if f := cmd.Flags().Lookup("top"); f != nil && !f.Changed && defaults.Top > 0 {
		flagTop = defaults.Top
	}
	return nil
}
