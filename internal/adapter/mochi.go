// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/utils"
	"github.com/nvaldez/traduz/models"
)

// Field names of the Mochi template used for exported cards. The field ids
// differ per account, so they are resolved from GET /templates at first use.
const (
	mochiFrontField = "Front"
	mochiBackField  = "Back"
)

// mochiExporter exports cards to the Mochi flashcard service. Authentication
// is HTTP basic with the API key as the username and an empty password.
//
// Card creation needs the account-specific ids of the Front and Back
// template fields. They are resolved lazily on the first CreateCard and
// memoized for the rest of the session, so that ListDecks can be used during
// setup without a template round trip.
type mochiExporter struct {
	client *utils.HTTPClient

	mu         sync.Mutex
	resolved   bool
	resolveErr error
	templateID string
	frontID    string
	backID     string

	logger *logger.Logger
}

type mochiDecksResponse struct {
	Docs []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"docs"`
}

type mochiTemplatesResponse struct {
	Docs []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Fields map[string]struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"fields"`
	} `json:"docs"`
}

type mochiField struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type mochiCardRequest struct {
	Content    string                `json:"content"`
	DeckID     string                `json:"deck-id"`
	TemplateID string                `json:"template-id"`
	Fields     map[string]mochiField `json:"fields"`
	// Mochi generates the reversed card alongside the regular one.
	ReviewReverse bool `json:"review-reverse?"`
}

// NewMochiExporter constructs a [CardExporter] backed by the Mochi API at
// adapterCfg.MochiURL, authenticated with apiKey.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewMochiExporter(adapterCfg config.Adapter, apiKey string, logger *logger.Logger) (CardExporter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.MochiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mochi address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetBasicAuth(strings.TrimSpace(apiKey), "")

	return &mochiExporter{client: client, logger: logger}, nil
}

// ListDecks implements [CardExporter]. It GETs /decks and returns the decks
// in service order.
func (m *mochiExporter) ListDecks(ctx context.Context) ([]models.Deck, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		Get("/decks")
	if err != nil {
		return nil, fmt.Errorf("%w: list decks request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapExportError(resp); err != nil {
		return nil, err
	}

	var body mochiDecksResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode decks response: %w", ErrRemoteUnavailable, err)
	}

	decks := make([]models.Deck, 0, len(body.Docs))
	for _, doc := range body.Docs {
		decks = append(decks, models.Deck{ID: doc.ID, Name: doc.Name})
	}

	return decks, nil
}

// CreateCard implements [CardExporter]. It resolves the template field ids if
// not yet known and POSTs the card to POST /cards with review-reverse?
// enabled, so Mochi schedules both directions for review.
func (m *mochiExporter) CreateCard(ctx context.Context, deckID, front, back string) error {
	if err := m.resolveTemplate(ctx); err != nil {
		return err
	}

	req := mochiCardRequest{
		DeckID:     deckID,
		TemplateID: m.templateID,
		Fields: map[string]mochiField{
			m.frontID: {ID: m.frontID, Value: front},
			m.backID:  {ID: m.backID, Value: back},
		},
		ReviewReverse: true,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/cards")
	if err != nil {
		return fmt.Errorf("%w: create card request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapExportError(resp); err != nil {
		return err
	}

	m.logger.Debug().
		Str("deck_id", deckID).
		Msg("card exported")

	return nil
}

// resolveTemplate finds the first template carrying both a Front and a Back
// field. Only final outcomes are memoized: a resolved template, or an
// account with no usable template. Transport failures stay unmemoized so a
// network blip during one export does not disable export for the rest of
// the session.
func (m *mochiExporter) resolveTemplate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.resolved {
		return m.resolveErr
	}

	final, err := m.fetchTemplate(ctx)
	if final {
		m.resolved = true
		m.resolveErr = err
	}

	return err
}

func (m *mochiExporter) fetchTemplate(ctx context.Context) (final bool, err error) {
	resp, err := m.client.R().
		SetContext(ctx).
		Get("/templates")
	if err != nil {
		return false, fmt.Errorf("%w: list templates request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapExportError(resp); err != nil {
		return false, err
	}

	var body mochiTemplatesResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return false, fmt.Errorf("%w: decode templates response: %w", ErrRemoteUnavailable, err)
	}

	for _, tmpl := range body.Docs {
		var frontID, backID string
		for _, field := range tmpl.Fields {
			switch field.Name {
			case mochiFrontField:
				frontID = field.ID
			case mochiBackField:
				backID = field.ID
			}
		}
		if frontID != "" && backID != "" {
			m.templateID = tmpl.ID
			m.frontID = frontID
			m.backID = backID

			m.logger.Debug().
				Str("template_id", tmpl.ID).
				Msg("mochi template resolved")

			return true, nil
		}
	}

	return true, fmt.Errorf("%w: no template with %s and %s fields", ErrRemoteUnavailable, mochiFrontField, mochiBackField)
}
