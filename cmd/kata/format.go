package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// formatAreaText formats a CLIArea result as a single line.
func formatAreaText(w io.Writer, area CLIArea) {
	fmt.Fprintf(w, "%s: %g\n", area.Shape, area.Area)
}

// formatWordsText formats CLIWord results as aligned columns.
func formatWordsText(w io.Writer, words []CLIWord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORD\tCOUNT")
	for _, word := range words {
		fmt.Fprintf(tw, "%s\t%d\n", word.Word, word.Count)
	}
	tw.Flush()
}

// formatSumText formats a CLISum result as a single line.
func formatSumText(w io.Writer, sum CLISum) {
	fmt.Fprintf(w, "%g (%d values)\n", sum.Sum, sum.Count)
}

// formatKeysText formats a CLIKeyReport as readable text.
func formatKeysText(w io.Writer, report CLIKeyReport) {
	if report.Valid {
		fmt.Fprintf(w, "ok: all required keys present (%s)\n", strings.Join(report.Required, ", "))
		return
	}
	fmt.Fprintf(w, "missing: %s\n", strings.Join(report.Missing, ", "))
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case CLIArea:
		formatAreaText(w, v)
	case []CLIWord:
		formatWordsText(w, v)
	case CLISum:
		formatSumText(w, v)
	case CLIKeyReport:
		formatKeysText(w, v)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}

	if result.TotalCount != nil {
		count := *result.TotalCount
		if shown := resultLen(result.Results); shown < count {
			fmt.Fprintf(w, "\nShowing %d of %d results\n", shown, count)
		}
	}

	return nil
}

// resultLen returns the length of a result slice, or 1 for a single value.
func resultLen(v any) int {
	switch r := v.(type) {
	case []CLIWord:
		return len(r)
	case nil:
		return 0
	default:
		return 1
	}
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
