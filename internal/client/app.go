package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/adapter"
	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/tui"
	"github.com/MKhiriev/go-theatre-ai/models"
)

// runner is the part of [tui.TUI] the application drives.
type runner interface {
	Run(ctx context.Context) error
}

// App wires the server adapter and the terminal UI into one process.
type App struct {
	ui     runner
	logger *logger.Logger
}

// NewApp builds the client from its configuration.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	ui, err := tui.New(serverAdapter, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create terminal UI: %w", err)
	}

	return &App{ui: ui, logger: log}, nil
}

// Run blocks until the user leaves the program. Quitting with ctrl+c is a
// normal exit.
func (a *App) Run(ctx context.Context) error {
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}

	return nil
}
