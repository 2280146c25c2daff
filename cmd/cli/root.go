package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/approvebot/internal/logger"
)

var (
	githubToken string
	defaultRepo string
)

var rootCmd = &cobra.Command{
	Use:   "approvebot-cli",
	Short: "approvebot-cli looks up and approves GitHub pull requests from the terminal.",
	Long: `A CLI companion to the approvebot service. It accepts the same
pull request references the bot understands (URL, owner/repo#N, or #N
with a default repository) and talks to GitHub with a personal access
token.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub personal access token")
	rootCmd.PersistentFlags().StringVarP(&defaultRepo, "repo", "r", "", "Default owner/repo for bare #N references")

	if err := viper.BindPFlag("GITHUB_TOKEN", rootCmd.PersistentFlags().Lookup("github-token")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("DEFAULT_REPO", rootCmd.PersistentFlags().Lookup("repo")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newCLILogger keeps library logging out of the command output.
func newCLILogger() *slog.Logger {
	return logger.NewLogger(logger.Config{Level: "error", Format: "text"}, os.Stderr)
}
