// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client of the theatre.
//
// The client holds no page logic: every key press that changes the session
// becomes one [adapter.ServerAdapter] call, and the returned [models.View]
// decides what is drawn next.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-theatre-ai/internal/adapter"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoAdapter = errors.New("tui: server adapter is required")

// TUI runs the interactive program.
type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates a [TUI] bound to the given server adapter.
func New(a adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if a == nil {
		return nil, errNoAdapter
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{adapter: a, buildInfo: buildInfo, logger: log}, nil
}

// Run blocks until the program exits. It returns [ErrUserQuit] when the user
// pressed ctrl+c and the program error otherwise.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Msg("starting terminal UI")

	root := NewRootModel(ctx, t.adapter, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("terminal UI stopped")
		return err
	}

	result, ok := finalModel.(*RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
