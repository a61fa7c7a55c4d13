// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

// Package tui implements the interactive terminal UI of traduz on top of
// bubbletea. It is split into two flows: the provider setup flow, run on
// first start or on request, and the main loop with the menu, card creation,
// and card browsing screens.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/service"
	"github.com/nvaldez/traduz/models"
)

type TUI struct {
	setup service.SetupService

	logger *logger.Logger
}

func New(setup service.SetupService, logger *logger.Logger) *TUI {
	return &TUI{setup: setup, logger: logger}
}

// SetupFlow walks the user through provider configuration and persists the
// result. Credentials from stored, the configuration of the previous session,
// are offered for reuse before fresh ones are prompted for. It returns the
// saved configuration, or [ErrUserQuit] when the user leaves before saving.
func (t *TUI) SetupFlow(ctx context.Context, stored models.ProviderConfig) (models.ProviderConfig, error) {
	model := newSetupAppModel(ctx, t.setup, stored)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.ProviderConfig{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.ProviderConfig{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.ProviderConfig{}, result.err
	}
	if !result.saved {
		return models.ProviderConfig{}, ErrUserQuit
	}

	return result.providerCfg, nil
}

// MainLoop runs the menu, card creation, and browsing screens until the user
// quits. cards is constructed by the caller after provider setup, so the
// translator and exporter choices are already baked in.
func (t *TUI) MainLoop(ctx context.Context, cards service.CardService) error {
	model := newMainAppModel(ctx, cards)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}

	return nil
}
