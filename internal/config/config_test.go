package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshidkv12/monkey/internal/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.True(t, cfg.Banner)
	assert.False(t, cfg.PrintNull)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "prompt: \"monkey> \"\nprint_null: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "monkey> ", cfg.Prompt)
	assert.True(t, cfg.PrintNull)
}

func TestLoadEmptyPromptFallsBack(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "print_null: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "prompt: [unterminated\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, config.Find(dir))

	writeConfig(t, dir, "prompt: \"> \"\n")
	assert.Equal(t, filepath.Join(dir, config.DefaultFileName), config.Find(dir))
}
