package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jward/kata"
	"github.com/spf13/cobra"
)

var flagShapeJSON string

var areaCmd = &cobra.Command{
	Use:   "area (circle RADIUS | rectangle WIDTH HEIGHT)",
	Short: "Compute the area of a shape",
	Long: `Compute the area of a shape described positionally or as discriminated JSON.

Circle areas are π·r² rounded to 2 decimal places; rectangle areas are
width·height with no rounding. Negative or non-finite dimensions are rejected.`,
	Example: `  kata area circle 5
  kata area rectangle 4 6
  kata area --json '{"shape":"circle","radius":5}'`,
	Args: cobra.MaximumNArgs(3),
	RunE: runArea,
}

func init() {
	areaCmd.Flags().StringVar(&flagShapeJSON, "json", "", `shape as discriminated JSON, e.g. '{"shape":"circle","radius":5}'`)
}

func runArea(cmd *cobra.Command, args []string) error {
	s, err := shapeFromArgs(args)
	if err != nil {
		return outputError("area", err)
	}

	area, err := kata.Area(s)
	if err != nil {
		return outputError("area", err)
	}

	return outputResult(CLIResult{
		Command: "area",
		Results: CLIArea{Shape: s.Kind(), Area: area},
	})
}

// shapeFromArgs builds a Shape from either the --json flag or positional
// arguments.
func shapeFromArgs(args []string) (kata.Shape, error) {
	if flagShapeJSON != "" {
		if len(args) > 0 {
			return nil, errors.New("--json and positional arguments are mutually exclusive")
		}
		return kata.ParseShape([]byte(flagShapeJSON))
	}

	if len(args) == 0 {
		return nil, errors.New(`expected "circle RADIUS" or "rectangle WIDTH HEIGHT"`)
	}
	switch args[0] {
	case "circle":
		if len(args) != 2 {
			return nil, errors.New("circle takes exactly one dimension: RADIUS")
		}
		radius, err := parseFloatArg(args[1], "radius")
		if err != nil {
			return nil, err
		}
		return kata.Circle{Radius: radius}, nil
	case "rectangle":
		if len(args) != 3 {
			return nil, errors.New("rectangle takes exactly two dimensions: WIDTH HEIGHT")
		}
		width, err := parseFloatArg(args[1], "width")
		if err != nil {
			return nil, err
		}
		height, err := parseFloatArg(args[2], "height")
		if err != nil {
			return nil, err
		}
		return kata.Rectangle{Width: width, Height: height}, nil
	default:
		return nil, fmt.Errorf("unknown shape %q: must be circle or rectangle", args[0])
	}
}

// parseFloatArg parses a positional argument as a number with a clear error.
func parseFloatArg(value, name string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return f, nil
}
