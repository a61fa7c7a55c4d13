package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nvaldez/traduz/internal/adapter"
	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/mock"
	"github.com/nvaldez/traduz/models"
)

func newTestSetupService(providers *mock.MockProviderConfigRepository, exporter adapter.CardExporter, translator adapter.Translator) *setupService {
	return &setupService{
		adapterCfg: config.Adapter{},
		providers:  providers,
		newExporter: func(config.Adapter, string, *logger.Logger) (adapter.CardExporter, error) {
			return exporter, nil
		},
		newTranslator: func(config.Adapter, string, *logger.Logger) (adapter.Translator, error) {
			return translator, nil
		},
		logger: logger.Nop(),
	}
}

func TestVerifyMochiKey_ReturnsDecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	exporter := mock.NewMockCardExporter(ctrl)
	ctx := context.Background()

	decks := []models.Deck{{ID: "d1", Name: "Spanish"}}
	exporter.EXPECT().ListDecks(ctx).Return(decks, nil)

	svc := newTestSetupService(mock.NewMockProviderConfigRepository(ctrl), exporter, nil)
	got, err := svc.VerifyMochiKey(ctx, " mochi-key ")

	require.NoError(t, err)
	assert.Equal(t, decks, got)
}

func TestVerifyMochiKey_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestSetupService(mock.NewMockProviderConfigRepository(ctrl), mock.NewMockCardExporter(ctrl), nil)

	_, err := svc.VerifyMochiKey(context.Background(), "   ")

	assert.ErrorIs(t, err, adapter.ErrAuthentication)
}

func TestVerifyMochiKey_RejectedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	exporter := mock.NewMockCardExporter(ctrl)
	ctx := context.Background()

	exporter.EXPECT().ListDecks(ctx).Return(nil, adapter.ErrAuthentication)

	svc := newTestSetupService(mock.NewMockProviderConfigRepository(ctrl), exporter, nil)
	_, err := svc.VerifyMochiKey(ctx, "bad-key")

	assert.ErrorIs(t, err, adapter.ErrAuthentication)
}

func TestVerifyDeepLKey_ReturnsSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mock.NewMockTranslator(ctrl)
	ctx := context.Background()

	translator.EXPECT().
		Translate(ctx, verifySampleText, models.EnglishToSpanish).
		Return("Hola, como estas?", nil)

	svc := newTestSetupService(mock.NewMockProviderConfigRepository(ctrl), nil, translator)
	sample, err := svc.VerifyDeepLKey(ctx, "deepl-key")

	require.NoError(t, err)
	assert.Equal(t, "Hola, como estas?", sample)
}

func TestVerifyDeepLKey_RejectedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mock.NewMockTranslator(ctrl)
	ctx := context.Background()

	translator.EXPECT().
		Translate(ctx, verifySampleText, models.EnglishToSpanish).
		Return("", adapter.ErrAuthentication)

	svc := newTestSetupService(mock.NewMockProviderConfigRepository(ctrl), nil, translator)
	_, err := svc.VerifyDeepLKey(ctx, "bad-key")

	assert.ErrorIs(t, err, adapter.ErrAuthentication)
}

func TestSaveLoadProviders_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	providers := mock.NewMockProviderConfigRepository(ctrl)
	ctx := context.Background()

	cfg := models.ProviderConfig{
		Mochi: models.MochiConfig{APIKey: "k", SelectedDeckID: "d1"},
	}
	providers.EXPECT().Save(ctx, cfg).Return(nil)
	providers.EXPECT().Load(ctx).Return(cfg, nil)

	svc := newTestSetupService(providers, nil, nil)

	require.NoError(t, svc.SaveProviders(ctx, cfg))
	got, err := svc.LoadProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
