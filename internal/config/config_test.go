package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("creates a default config on first run", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "main", cfg.MainBranch)
		assert.Equal(t, "origin", cfg.Remote)
		assert.Equal(t, "pr/", cfg.BranchPrefix)
		assert.False(t, cfg.DraftPRs)
		assert.True(t, cfg.UseEmoji)
		assert.Equal(t, filepath.Join(home, ".stack-mate", "config.json"), cfg.PathFile)

		_, err = os.Stat(cfg.PathFile)
		assert.NoError(t, err)
	})

	t.Run("round-trips saved values", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		cfg.Language = "es"
		cfg.MainBranch = "trunk"
		cfg.BranchPrefix = "stack/"
		cfg.DraftPRs = true
		require.NoError(t, SaveConfig(cfg))

		loaded, err := LoadConfig(home)
		require.NoError(t, err)
		assert.Equal(t, "es", loaded.Language)
		assert.Equal(t, "trunk", loaded.MainBranch)
		assert.Equal(t, "stack/", loaded.BranchPrefix)
		assert.True(t, loaded.DraftPRs)
	})

	t.Run("accepts a direct path to a json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.json")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("rejects a corrupted file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("rejects a stored config with an invalid prefix", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"language": "en",
			"main_branch": "main",
			"remote": "origin",
			"branch_prefix": "pr ~"
		}`), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("refuses a config without a file path", func(t *testing.T) {
		cfg := &Config{Language: "en", MainBranch: "main", Remote: "origin"}
		assert.Error(t, SaveConfig(cfg))
	})

	t.Run("refuses an invalid branch prefix", func(t *testing.T) {
		cfg := &Config{
			Language:     "en",
			MainBranch:   "main",
			Remote:       "origin",
			BranchPrefix: "bad:prefix",
			PathFile:     filepath.Join(t.TempDir(), "config.json"),
		}
		assert.Error(t, SaveConfig(cfg))
	})

	t.Run("refuses an empty main branch", func(t *testing.T) {
		cfg := &Config{
			Language: "en",
			Remote:   "origin",
			PathFile: filepath.Join(t.TempDir(), "config.json"),
		}
		assert.Error(t, SaveConfig(cfg))
	})
}

func TestToken(t *testing.T) {
	t.Run("prefers the configured token", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "env-token")
		cfg := &Config{GithubToken: "file-token"}
		assert.Equal(t, "file-token", cfg.Token())
	})

	t.Run("falls back to the environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "env-token")
		cfg := &Config{}
		assert.Equal(t, "env-token", cfg.Token())
	})

	t.Run("empty when neither is set", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		cfg := &Config{}
		assert.Empty(t, cfg.Token())
	})
}

func TestGetLocaleConfig(t *testing.T) {
	assert.Equal(t, LangES, GetLocaleConfig("es"))
	assert.Equal(t, LangEN, GetLocaleConfig("en"))
	assert.Equal(t, LangEN, GetLocaleConfig("fr"))
}
