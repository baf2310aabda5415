package main

import (
	"testing"

	"github.com/jward/kata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}

func TestParseFloatArg(t *testing.T) {
	t.Parallel()
	got, err := parseFloatArg("4.5", "width")
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)

	_, err = parseFloatArg("four", "width")
	assert.ErrorContains(t, err, "width")
}

func TestShapeFromArgs_Circle(t *testing.T) {
	t.Parallel()
	s, err := shapeFromArgs([]string{"circle", "5"})
	require.NoError(t, err)
	assert.Equal(t, kata.Circle{Radius: 5}, s)
}

func TestShapeFromArgs_Rectangle(t *testing.T) {
	t.Parallel()
	s, err := shapeFromArgs([]string{"rectangle", "4", "6"})
	require.NoError(t, err)
	assert.Equal(t, kata.Rectangle{Width: 4, Height: 6}, s)
}

func TestShapeFromArgs_WrongArity(t *testing.T) {
	t.Parallel()
	_, err := shapeFromArgs([]string{"circle"})
	assert.Error(t, err)

	_, err = shapeFromArgs([]string{"rectangle", "4"})
	assert.Error(t, err)

	_, err = shapeFromArgs(nil)
	assert.Error(t, err)
}

func TestShapeFromArgs_UnknownShape(t *testing.T) {
	t.Parallel()
	_, err := shapeFromArgs([]string{"triangle", "3", "4"})
	assert.ErrorContains(t, err, "triangle")
}

func TestShapeFromArgs_JSONFlag(t *testing.T) {
	old := flagShapeJSON
	defer func() { flagShapeJSON = old }()

	flagShapeJSON = `{"shape":"circle","radius":2}`
	s, err := shapeFromArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, kata.Circle{Radius: 2}, s)

	_, err = shapeFromArgs([]string{"circle", "2"})
	assert.ErrorContains(t, err, "mutually exclusive")
}
