package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFindAndLoadWithoutFile(t *testing.T) {
	dir := t.TempDir()

	cfg, path, err := FindAndLoad(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, want, FindConfigFile(nested))
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[repl]
prompt = "lox> "

[runtime]
max_call_depth = 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.Repl.Prompt)
	assert.Equal(t, ".tulox_history", cfg.Repl.History)
	assert.Equal(t, 100, cfg.Runtime.MaxCallDepth)
	assert.Equal(t, "auto", cfg.Diagnostics.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", "[diagnostics]\ncolor = \"sometimes\"\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"negative depth", "[runtime]\nmax_call_depth = -1\n"},
		{"depth over limit", "[runtime]\nmax_call_depth = 100001\n"},
		{"bad toml", "[repl\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadAcceptsDepthAtLimit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[runtime]\nmax_call_depth = 100000\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100000, cfg.Runtime.MaxCallDepth)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelWarn,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestHistoryPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Repl.History = ""
	assert.Empty(t, cfg.HistoryPath())

	abs := filepath.Join(t.TempDir(), "hist")
	cfg.Repl.History = abs
	assert.Equal(t, abs, cfg.HistoryPath())
}
