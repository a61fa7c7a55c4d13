// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

// Package service implements the application logic of traduz on top of the
// store and adapter layers: card creation with translation and optional
// export, card browsing, and the provider setup operations.
package service

import (
	"context"

	"github.com/nvaldez/traduz/models"
)

// CreateResult reports the outcome of a card creation. The card itself is
// always durably saved when the error return of CreateCard is nil; Exported
// and ExportErr describe only the remote copy.
type CreateResult struct {
	// Card is the locally persisted card.
	Card models.Card

	// Exported is true when the card was also created on the export
	// service.
	Exported bool

	// ExportErr holds the export failure when Exported is false and export
	// was attempted. It is advisory: the local save has already succeeded.
	ExportErr error
}

// CardService drives the card creation and browsing operations of a session.
type CardService interface {
	// CreateCard translates text in the given direction, persists the
	// resulting card locally, and, when an exporter is configured, mirrors
	// it to the remote deck.
	//
	// Failure order matters: a translation failure means nothing is saved
	// anywhere; a local save failure means nothing is exported; an export
	// failure is reported inside the result and never undoes the local
	// save. Empty or blank input fails with [ErrEmptyText].
	CreateCard(ctx context.Context, text string, pair models.LanguagePair) (CreateResult, error)

	// ListCards returns all saved cards in creation order.
	ListCards(ctx context.Context) ([]models.Card, error)
}

// SetupService drives the interactive provider configuration flow.
type SetupService interface {
	// LoadProviders reads the persisted provider configuration. A missing
	// file yields the zero config.
	LoadProviders(ctx context.Context) (models.ProviderConfig, error)

	// SaveProviders persists the provider configuration for future
	// sessions.
	SaveProviders(ctx context.Context, cfg models.ProviderConfig) error

	// VerifyMochiKey checks an export key by listing the account's decks.
	// The decks double as the choices for deck selection.
	VerifyMochiKey(ctx context.Context, apiKey string) ([]models.Deck, error)

	// VerifyDeepLKey checks a premium translation key by requesting a
	// short sample translation, which is returned for display.
	VerifyDeepLKey(ctx context.Context, apiKey string) (string, error)
}
