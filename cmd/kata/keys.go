package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jward/kata/internal/validate"
	"github.com/spf13/cobra"
)

var flagRequired string

var keysCmd = &cobra.Command{
	Use:   "keys --required KEY,... [FILE]",
	Short: "Check a JSON object for required keys",
	Long: `Check that the JSON object in FILE (or stdin) contains every required key.
A key whose value is null counts as missing. Exits non-zero when keys are
missing, listing them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().StringVar(&flagRequired, "required", "", "comma-separated required keys")
}

func runKeys(cmd *cobra.Command, args []string) error {
	if flagRequired == "" {
		return outputError("keys", errors.New("--required must list at least one key"))
	}
	required := strings.Split(flagRequired, ",")
	for i := range required {
		required[i] = strings.TrimSpace(required[i])
	}

	text, err := readInput(args)
	if err != nil {
		return outputError("keys", err)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return outputError("keys", fmt.Errorf("parsing object: %w", err))
	}

	missing := validate.Missing(obj, required)
	report := CLIKeyReport{
		Valid:    len(missing) == 0,
		Required: required,
		Missing:  missing,
	}
	if err := outputResult(CLIResult{Command: "keys", Results: report}); err != nil {
		return err
	}
	if !report.Valid {
		// The report has already been printed; exit non-zero quietly.
		errorHandled = true
		return validate.RequiredKeys(obj, required)
	}
	return nil
}
