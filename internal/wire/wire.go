//go:build wireinject
// +build wireinject

// Package wire assembles the application with compile-time dependency
// injection. Run `go generate ./...` (or `wire ./internal/wire`) after
// changing providers.
package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/approvebot/internal/app"
)

// InitializeApp builds the fully wired application.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(AppSet)
	return nil, nil, nil
}
