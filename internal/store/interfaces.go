// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

// Package store provides the local persistence layer of traduz: the card
// file holding all created flashcards and the providers file holding
// per-provider credentials and the selected remote deck.
//
// Both files are plain YAML, written atomically (temp file + rename) so a
// crash mid-write can never corrupt the previous state. There is no
// in-memory cache: every operation reads or rewrites the backing file, which
// keeps the store tolerant of edits made by the user between invocations.
package store

import (
	"context"

	"github.com/nvaldez/traduz/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CardRepository is the durable flashcard store.
type CardRepository interface {
	// Load reads all persisted cards in append order. An absent or empty
	// card file is not an error and yields an empty slice. A file that
	// cannot be parsed into the card shape (bad YAML, wrong type, missing
	// required key) fails with an error wrapping [ErrStoreCorrupt].
	Load(ctx context.Context) ([]models.Card, error)

	// Append assigns the next id (max existing id + 1, or 1 for an empty
	// store), stamps the creation time, persists the full updated sequence
	// atomically, and returns the new card. Front and back must be
	// non-empty ([ErrEmptyCardSide]).
	Append(ctx context.Context, front, back string, pair models.LanguagePair) (models.Card, error)

	// ListAll returns all cards in the order they were appended.
	ListAll(ctx context.Context) ([]models.Card, error)
}

// ProviderConfigRepository persists per-provider credential and selection
// state between sessions.
type ProviderConfigRepository interface {
	// Load reads the persisted provider configuration. An absent file is
	// not an error and yields the zero config (all providers disabled).
	Load(ctx context.Context) (models.ProviderConfig, error)

	// Save atomically replaces the persisted provider configuration.
	Save(ctx context.Context, cfg models.ProviderConfig) error
}
