package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAreaText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatAreaText(&buf, CLIArea{Shape: "circle", Area: 78.54})
	assert.Equal(t, "circle: 78.54\n", buf.String())
}

func TestFormatWordsText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatWordsText(&buf, []CLIWord{
		{Word: "the", Count: 3},
		{Word: "fox", Count: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "WORD")
	assert.Contains(t, out, "the")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "fox")
}

func TestFormatSumText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatSumText(&buf, CLISum{Count: 3, Sum: 6})
	assert.Equal(t, "6 (3 values)\n", buf.String())
}

func TestFormatKeysText_Valid(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatKeysText(&buf, CLIKeyReport{Valid: true, Required: []string{"a", "b"}})
	assert.Contains(t, buf.String(), "ok")
}

func TestFormatKeysText_Missing(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatKeysText(&buf, CLIKeyReport{Valid: false, Required: []string{"a", "b"}, Missing: []string{"b"}})
	assert.Equal(t, "missing: b\n", buf.String())
}

func TestResultLen(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, resultLen([]CLIWord{{}, {}}))
	assert.Equal(t, 0, resultLen(nil))
	assert.Equal(t, 1, resultLen(CLISum{}))
}
