package main

import (
	"github.com/jward/kata/internal/numeric"
	"github.com/spf13/cobra"
)

var sumCmd = &cobra.Command{
	Use:   "sum NUM...",
	Short: "Sum numeric arguments",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSum,
}

func runSum(cmd *cobra.Command, args []string) error {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := parseFloatArg(arg, "number")
		if err != nil {
			return outputError("sum", err)
		}
		values[i] = v
	}

	// ParseFloat accepts "NaN" and "Inf"; SumValid rejects them.
	total, err := numeric.SumValid(values)
	if err != nil {
		return outputError("sum", err)
	}

	return outputResult(CLIResult{
		Command: "sum",
		Results: CLISum{Count: len(values), Sum: total},
	})
}
