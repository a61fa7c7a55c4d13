// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/utils"
	"github.com/nvaldez/traduz/models"
)

// deepLTranslator is the premium translation backend. It requires an API key
// and is selected over the free backend whenever one is configured.
type deepLTranslator struct {
	client *utils.HTTPClient

	apiKey string

	logger *logger.Logger
}

type deepLResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// NewDeepLTranslator constructs a [Translator] backed by the DeepL API at
// adapterCfg.DeepLURL, authenticated with apiKey.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewDeepLTranslator(adapterCfg config.Adapter, apiKey string, logger *logger.Logger) (Translator, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.DeepLURL)
	if err != nil {
		return nil, fmt.Errorf("invalid deepl address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &deepLTranslator{client: client, apiKey: strings.TrimSpace(apiKey), logger: logger}, nil
}

// Translate implements [Translator]. It POSTs a form-encoded request to
// POST /v2/translate with upper-cased source and target language codes.
// A 401 or 403 response maps to [ErrAuthentication]; any other failure,
// including an empty result, maps to [ErrTranslationUnavailable].
func (d *deepLTranslator) Translate(ctx context.Context, text string, pair models.LanguagePair) (string, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "DeepL-Auth-Key "+d.apiKey).
		SetFormData(map[string]string{
			"text":        text,
			"source_lang": strings.ToUpper(pair.Source()),
			"target_lang": strings.ToUpper(pair.Target()),
		}).
		Post("/v2/translate")
	if err != nil {
		return "", fmt.Errorf("%w: deepl request: %w", ErrTranslationUnavailable, err)
	}
	if err = mapPremiumTranslationError(resp); err != nil {
		return "", err
	}

	var body deepLResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode deepl response: %w", ErrTranslationUnavailable, err)
	}

	if len(body.Translations) == 0 || strings.TrimSpace(body.Translations[0].Text) == "" {
		return "", fmt.Errorf("%w: deepl returned empty translation", ErrTranslationUnavailable)
	}

	d.logger.Debug().
		Str("pair", pair.String()).
		Msg("deepl translation succeeded")

	return strings.TrimSpace(body.Translations[0].Text), nil
}
