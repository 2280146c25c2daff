// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/approvebot/internal/logger"
)

// Event delivery modes for the Slack side.
const (
	ModeSocket = "socket" // Socket Mode over the app-level token
	ModeHTTP   = "http"   // Events API over HTTP, verified with the signing secret
)

// Config holds the application's configuration values.
type Config struct {
	ServerPort         string
	Mode               string
	SlackBotToken      string
	SlackAppToken      string
	SlackSigningSecret string
	GitHubToken        string
	// DefaultRepo is the optional "owner/repo" fallback used to
	// resolve bare #N references.
	DefaultRepo  string
	LoggerConfig logger.Config
}

// LoadConfig reads configuration from environment variables and a .env
// file, sets defaults, and validates required fields. Missing required
// options are reported together in one diagnostic.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SLACK_MODE", ModeSocket)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")

	// A missing .env is fine; the environment can carry everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no readable .env file", "error", err)
		}
	}

	cfg := &Config{
		ServerPort:         viper.GetString("SERVER_PORT"),
		Mode:               strings.ToLower(viper.GetString("SLACK_MODE")),
		SlackBotToken:      viper.GetString("SLACK_BOT_TOKEN"),
		SlackAppToken:      viper.GetString("SLACK_APP_TOKEN"),
		SlackSigningSecret: viper.GetString("SLACK_SIGNING_SECRET"),
		GitHubToken:        viper.GetString("GITHUB_TOKEN"),
		DefaultRepo:        viper.GetString("DEFAULT_REPO"),
		LoggerConfig: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate collects every missing required option so the startup
// diagnostic names all of them at once.
func (c *Config) validate() error {
	if c.Mode != ModeSocket && c.Mode != ModeHTTP {
		return fmt.Errorf("SLACK_MODE must be %q or %q, got %q", ModeSocket, ModeHTTP, c.Mode)
	}

	var missing []string
	if c.SlackBotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if c.GitHubToken == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}
	if c.Mode == ModeSocket && c.SlackAppToken == "" {
		missing = append(missing, "SLACK_APP_TOKEN")
	}
	if c.Mode == ModeHTTP && c.SlackSigningSecret == "" {
		missing = append(missing, "SLACK_SIGNING_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.DefaultRepo != "" {
		parts := strings.Split(c.DefaultRepo, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("DEFAULT_REPO must be in owner/repo form, got %q", c.DefaultRepo)
		}
	}
	return nil
}
