package wire

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"
	slackapi "github.com/slack-go/slack"

	"github.com/sevigo/approvebot/internal/app"
	"github.com/sevigo/approvebot/internal/bot"
	"github.com/sevigo/approvebot/internal/config"
	"github.com/sevigo/approvebot/internal/github"
	"github.com/sevigo/approvebot/internal/logger"
	"github.com/sevigo/approvebot/internal/server"
	"github.com/sevigo/approvebot/internal/slack"
)

var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	logger.NewLogger,
	config.LoadConfig,
	bot.NewDispatcher,
	github.NewGateway,
	slack.NewMessenger,
	provideSlackAPI,
	provideGitHubClient,
	provideSocketBridge,
	provideLoggerConfig,
	provideLogWriter,
)

// provideSlackAPI builds the Slack Web API client. The app-level token
// is only attached when socket mode will actually use it.
func provideSlackAPI(cfg *config.Config) *slackapi.Client {
	if cfg.Mode == config.ModeSocket {
		return slackapi.New(cfg.SlackBotToken, slackapi.OptionAppLevelToken(cfg.SlackAppToken))
	}
	return slackapi.New(cfg.SlackBotToken)
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) github.Client {
	return github.NewPATClient(ctx, cfg.GitHubToken, logger)
}

// provideSocketBridge returns nil in http mode: events then arrive on
// the HTTP listener instead.
func provideSocketBridge(cfg *config.Config, api *slackapi.Client, dispatcher *bot.Dispatcher, logger *slog.Logger) *server.SocketBridge {
	if cfg.Mode != config.ModeSocket {
		return nil
	}
	return server.NewSocketBridge(api, dispatcher, logger)
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.LoggerConfig
}

func provideLogWriter() io.Writer {
	return os.Stdout
}
