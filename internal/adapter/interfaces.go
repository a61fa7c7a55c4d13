// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

// Package adapter provides transport-layer abstractions for the external
// HTTP services traduz talks to.
//
// Two capability interfaces are exposed: [Translator] for translation
// backends (the free MyMemory API and the premium DeepL API) and
// [CardExporter] for the Mochi flashcard service. Implementations are
// responsible for serialisation, credential header management, and mapping
// transport-level failures to the sentinel values defined in errors.go, so
// that callers can use [errors.Is] for provider-agnostic error handling.
//
// Which translator serves a session is decided once at startup by
// [NewTranslator]; there is no mid-session fallback from the premium to the
// free backend.
package adapter

import (
	"context"

	"github.com/nvaldez/traduz/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Translator turns source text into target-language text for one of the
// supported language pairs.
type Translator interface {
	// Translate returns the translation of text for the given direction.
	// Failures are reported, never masked: an unreachable backend, a
	// non-success response, or an empty result all yield an error wrapping
	// [ErrTranslationUnavailable] (or [ErrAuthentication] for a rejected
	// premium credential). The source text is never returned as a
	// stand-in translation.
	Translate(ctx context.Context, text string, pair models.LanguagePair) (string, error)
}

// CardExporter mirrors locally created cards to a remote flashcard service.
type CardExporter interface {
	// ListDecks enumerates the decks available to the configured account,
	// in the order the service lists them. Fails with
	// [ErrAuthentication] on a rejected credential and
	// [ErrRemoteUnavailable] on network or service failure.
	ListDecks(ctx context.Context) ([]models.Deck, error)

	// CreateCard creates a front/back card in the given remote deck.
	// Error semantics match ListDecks. The caller is expected to have
	// durably persisted the card locally first: a failure here must only
	// ever cost the remote copy.
	CreateCard(ctx context.Context, deckID, front, back string) error
}
