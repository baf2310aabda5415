package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command    string `json:"command"`
	Results    any    `json:"results"`
	TotalCount *int   `json:"total_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CLIArea is a JSON-friendly area computation result.
type CLIArea struct {
	Shape string  `json:"shape"`
	Area  float64 `json:"area"`
}

// CLIWord is a JSON-friendly word-frequency entry.
type CLIWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CLISum is a JSON-friendly summation result.
type CLISum struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// CLIKeyReport is a JSON-friendly required-key validation result.
type CLIKeyReport struct {
	Valid    bool     `json:"valid"`
	Required []string `json:"required"`
	Missing  []string `json:"missing,omitempty"`
}
