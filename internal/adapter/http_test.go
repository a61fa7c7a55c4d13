package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/models"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets https scheme", raw: "api.mymemory.translated.net", want: "https://api.mymemory.translated.net"},
		{name: "trailing slash trimmed", raw: "https://app.mochi.cards/api/", want: "https://app.mochi.cards/api"},
		{name: "explicit http kept", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "surrounding whitespace", raw: "  https://api.deepl.com  ", want: "https://api.deepl.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTranslator_PrefersDeepLWhenConfigured(t *testing.T) {
	cfg := config.Adapter{
		MyMemoryURL: "https://api.mymemory.translated.net",
		DeepLURL:    "https://api.deepl.com",
	}

	tr, err := NewTranslator(cfg, models.ProviderConfig{
		DeepL: models.DeepLConfig{APIKey: "key"},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &deepLTranslator{}, tr)

	tr, err = NewTranslator(cfg, models.ProviderConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &myMemoryTranslator{}, tr)
}
