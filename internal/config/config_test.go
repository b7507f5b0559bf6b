package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Config reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL", "WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE",
		"WORDLE_ROUNDS", "WORDLE_LENGTH", "WORDLE_HINTS", "NO_COLOR",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 6, cfg.Rounds)
	assert.Equal(t, 5, cfg.Length)
	assert.False(t, cfg.Hints)
	assert.False(t, cfg.ColorDisabled())
	assert.Empty(t, cfg.AnswersFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLE_ROUNDS", "8")
	t.Setenv("WORDLE_HINTS", "true")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("WORDS_ALLOWED_FILE", "/tmp/allowed.txt")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Rounds)
	assert.True(t, cfg.Hints)
	assert.True(t, cfg.ColorDisabled())
	assert.Equal(t, "/tmp/allowed.txt", cfg.AllowedFile)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("WORDLE_LENGTH=6\nLOG_LEVEL=debug\n"), 0o644))
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load(dotenv)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Length)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLE_ROUNDS", "0")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("WORDLE_ROUNDS", "six")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
