package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_APP_TOKEN", "xapp-test")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults applied", func(t *testing.T) {
		setRequired(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, ModeSocket, cfg.Mode)
		assert.Equal(t, "info", cfg.LoggerConfig.Level)
		assert.Empty(t, cfg.DefaultRepo)
	})

	t.Run("Missing required options are all listed", func(t *testing.T) {
		viper.Reset()
		t.Setenv("SLACK_BOT_TOKEN", "")
		t.Setenv("SLACK_APP_TOKEN", "")
		t.Setenv("GITHUB_TOKEN", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_BOT_TOKEN")
		assert.Contains(t, err.Error(), "SLACK_APP_TOKEN")
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	})

	t.Run("HTTP mode requires the signing secret instead of the app token", func(t *testing.T) {
		viper.Reset()
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("GITHUB_TOKEN", "ghp_test")
		t.Setenv("SLACK_MODE", "http")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_SIGNING_SECRET")
		assert.NotContains(t, err.Error(), "SLACK_APP_TOKEN")

		t.Setenv("SLACK_SIGNING_SECRET", "sssh")
		viper.Reset()
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ModeHTTP, cfg.Mode)
	})

	t.Run("Unknown mode rejected", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SLACK_MODE", "carrier-pigeon")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_MODE")
	})

	t.Run("Default repo must be owner/repo", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DEFAULT_REPO", "not-a-full-name")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DEFAULT_REPO")
	})

	t.Run("Valid default repo accepted", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DEFAULT_REPO", "acme/widgets")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "acme/widgets", cfg.DefaultRepo)
	})
}
