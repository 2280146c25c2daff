// Package app initializes and orchestrates the main components of the
// application: the HTTP listener and, in socket mode, the Socket Mode
// event bridge.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/approvebot/internal/config"
	"github.com/sevigo/approvebot/internal/server"
)

// App holds the main application components.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	server *server.Server
	bridge *server.SocketBridge // nil in http mode
	logger *slog.Logger
}

// NewApp assembles the application. bridge may be nil when events
// arrive over HTTP instead of Socket Mode.
func NewApp(ctx context.Context, cfg *config.Config, srv *server.Server, bridge *server.SocketBridge, logger *slog.Logger) *App {
	return &App{
		ctx:    ctx,
		cfg:    cfg,
		server: srv,
		bridge: bridge,
		logger: logger,
	}
}

// Start runs the event bridge (when configured) and the HTTP server.
// It blocks until the server stops.
func (a *App) Start() error {
	a.logger.Info("starting approvebot",
		"mode", a.cfg.Mode,
		"server_port", a.cfg.ServerPort,
		"default_repo", a.cfg.DefaultRepo)

	if a.bridge != nil {
		go func() {
			if err := a.bridge.Run(a.ctx); err != nil && a.ctx.Err() == nil {
				a.logger.Error("socket mode bridge stopped", "error", err)
			}
		}()
	}

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly. The socket bridge stops with
// the context; only the HTTP server needs an explicit shutdown.
func (a *App) Stop() error {
	a.logger.Info("shutting down approvebot")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("approvebot stopped successfully")
	return nil
}
