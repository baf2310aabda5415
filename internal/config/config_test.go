package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_BuiltInDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", got.Format)
	assert.Equal(t, 0, got.Top)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	err := os.WriteFile(filepath.Join(dir, ".kata.yaml"), []byte("format: text\ntop: 5\n"), 0o644)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", got.Format)
	assert.Equal(t, 5, got.Top)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	err := os.WriteFile(filepath.Join(dir, ".kata.yaml"), []byte("format: text\n"), 0o644)
	require.NoError(t, err)
	t.Setenv("KATA_FORMAT", "json")

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", got.Format)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	err := os.WriteFile(filepath.Join(dir, ".kata.yaml"), []byte("format: [unclosed\n"), 0o644)
	require.NoError(t, err)

	_, err = Load()
	assert.Error(t, err)
}
