// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/utils"
	"github.com/nvaldez/traduz/models"
)

// myMemoryTranslator is the free translation backend. No credential is
// required; the service applies anonymous rate limits instead.
type myMemoryTranslator struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// myMemoryResponse is the subset of the MyMemory GET /get payload the
// adapter reads. The service reports application-level failures inside a
// 200 response, so responseStatus must be checked as well as the HTTP code.
type myMemoryResponse struct {
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
	ResponseData    struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// NewMyMemoryTranslator constructs a [Translator] backed by the free
// MyMemory API at adapterCfg.MyMemoryURL.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewMyMemoryTranslator(adapterCfg config.Adapter, logger *logger.Logger) (Translator, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.MyMemoryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mymemory address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &myMemoryTranslator{client: client, logger: logger}, nil
}

// Translate implements [Translator]. It GETs /get with the source text and a
// "src|dst" langpair query, then unwraps responseData.translatedText.
// Both transport failures and in-band service errors (responseStatus other
// than 200, or an empty result) map to [ErrTranslationUnavailable].
func (m *myMemoryTranslator) Translate(ctx context.Context, text string, pair models.LanguagePair) (string, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("q", text).
		SetQueryParam("langpair", pair.Source()+"|"+pair.Target()).
		Get("/get")
	if err != nil {
		return "", fmt.Errorf("%w: mymemory request: %w", ErrTranslationUnavailable, err)
	}
	if err = mapFreeTranslationError(resp); err != nil {
		return "", err
	}

	var body myMemoryResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode mymemory response: %w", ErrTranslationUnavailable, err)
	}

	if status, convErr := body.ResponseStatus.Int64(); convErr != nil || status != http.StatusOK {
		details := strings.TrimSpace(body.ResponseDetails)
		if details == "" {
			details = "status " + body.ResponseStatus.String()
		}
		return "", fmt.Errorf("%w: mymemory: %s", ErrTranslationUnavailable, details)
	}

	translated := strings.TrimSpace(body.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("%w: mymemory returned empty translation", ErrTranslationUnavailable)
	}

	m.logger.Debug().
		Str("pair", pair.String()).
		Msg("mymemory translation succeeded")

	return translated, nil
}
