// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvaldez/traduz/internal/adapter"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/store"
	"github.com/nvaldez/traduz/models"
)

type cardService struct {
	cards      store.CardRepository
	translator adapter.Translator
	exporter   adapter.CardExporter
	deckID     string

	logger *logger.Logger
}

// NewCardService wires the card creation pipeline. exporter may be nil when
// export is not configured; deckID is the remote deck receiving exported
// cards and is ignored when exporter is nil.
func NewCardService(cards store.CardRepository, translator adapter.Translator, exporter adapter.CardExporter, deckID string, logger *logger.Logger) CardService {
	return &cardService{
		cards:      cards,
		translator: translator,
		exporter:   exporter,
		deckID:     deckID,
		logger:     logger,
	}
}

// CreateCard implements [CardService]. The source text becomes the front of
// the card and the translation the back, for either direction.
func (c *cardService) CreateCard(ctx context.Context, text string, pair models.LanguagePair) (CreateResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return CreateResult{}, ErrEmptyText
	}

	translated, err := c.translator.Translate(ctx, text, pair)
	if err != nil {
		return CreateResult{}, fmt.Errorf("translate card text: %w", err)
	}

	card, err := c.cards.Append(ctx, text, translated, pair)
	if err != nil {
		return CreateResult{}, fmt.Errorf("save card: %w", err)
	}

	result := CreateResult{Card: card}
	if c.exporter == nil {
		return result, nil
	}

	// The card is already durable. An export failure costs only the remote
	// copy and is reported inside the result.
	if err = c.exporter.CreateCard(ctx, c.deckID, card.Front, card.Back); err != nil {
		c.logger.Warn().
			Err(err).
			Int64("card_id", card.ID).
			Msg("card export failed, local copy kept")

		result.ExportErr = err
		return result, nil
	}

	result.Exported = true
	return result, nil
}

// ListCards implements [CardService].
func (c *cardService) ListCards(ctx context.Context) ([]models.Card, error) {
	cards, err := c.cards.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}
