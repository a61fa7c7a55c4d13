// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/models"
)

func newMyMemory(t *testing.T, serverURL string) Translator {
	t.Helper()
	tr, err := NewMyMemoryTranslator(config.Adapter{
		MyMemoryURL:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return tr
}

func TestMyMemory_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "Hello", r.URL.Query().Get("q"))
		assert.Equal(t, "en|es", r.URL.Query().Get("langpair"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"Hola"}}`))
	}))
	defer srv.Close()

	got, err := newMyMemory(t, srv.URL).Translate(context.Background(), "Hello", models.EnglishToSpanish)

	require.NoError(t, err)
	assert.Equal(t, "Hola", got)
}

func TestMyMemory_ReverseDirectionLangpair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "es|en", r.URL.Query().Get("langpair"))
		w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"Hello"}}`))
	}))
	defer srv.Close()

	got, err := newMyMemory(t, srv.URL).Translate(context.Background(), "Hola", models.SpanishToEnglish)

	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
}

func TestMyMemory_InBandError(t *testing.T) {
	// the service reports quota and validation failures inside a 200 body
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseStatus":403,"responseDetails":"INVALID LANGUAGE PAIR","responseData":{"translatedText":""}}`))
	}))
	defer srv.Close()

	_, err := newMyMemory(t, srv.URL).Translate(context.Background(), "Hello", models.EnglishToSpanish)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTranslationUnavailable)
	assert.Contains(t, err.Error(), "INVALID LANGUAGE PAIR")
}

func TestMyMemory_EmptyTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"  "}}`))
	}))
	defer srv.Close()

	_, err := newMyMemory(t, srv.URL).Translate(context.Background(), "Hello", models.EnglishToSpanish)

	assert.ErrorIs(t, err, ErrTranslationUnavailable)
}

func TestMyMemory_RateLimited(t *testing.T) {
	// anonymous rate limiting comes back as 403; with no credential in
	// play this is an availability failure, not an authentication one
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newMyMemory(t, srv.URL).Translate(context.Background(), "Hello", models.EnglishToSpanish)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTranslationUnavailable)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

func TestMyMemory_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newMyMemory(t, srv.URL).Translate(context.Background(), "Hello", models.EnglishToSpanish)

	assert.ErrorIs(t, err, ErrTranslationUnavailable)
}

func TestMyMemory_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newMyMemory(t, srv.URL).Translate(context.Background(), "Hello", models.EnglishToSpanish)

	assert.ErrorIs(t, err, ErrTranslationUnavailable)
}

func TestMyMemory_EmptyAddress(t *testing.T) {
	_, err := NewMyMemoryTranslator(config.Adapter{MyMemoryURL: "   "}, logger.Nop())

	assert.Error(t, err)
}
