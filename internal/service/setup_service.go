package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvaldez/traduz/internal/adapter"
	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/store"
	"github.com/nvaldez/traduz/models"
)

// verifySampleText is translated during DeepL key verification so the user
// can see the premium backend working before the key is saved.
const verifySampleText = "Hello, how are you?"

type setupService struct {
	adapterCfg config.Adapter
	providers  store.ProviderConfigRepository

	// Factory indirection keeps key verification testable without real
	// HTTP endpoints.
	newExporter   func(config.Adapter, string, *logger.Logger) (adapter.CardExporter, error)
	newTranslator func(config.Adapter, string, *logger.Logger) (adapter.Translator, error)

	logger *logger.Logger
}

// NewSetupService constructs the [SetupService] used by the interactive
// provider setup flow.
func NewSetupService(adapterCfg config.Adapter, providers store.ProviderConfigRepository, logger *logger.Logger) SetupService {
	return &setupService{
		adapterCfg:    adapterCfg,
		providers:     providers,
		newExporter:   adapter.NewMochiExporter,
		newTranslator: adapter.NewDeepLTranslator,
		logger:        logger,
	}
}

func (s *setupService) LoadProviders(ctx context.Context) (models.ProviderConfig, error) {
	cfg, err := s.providers.Load(ctx)
	if err != nil {
		return models.ProviderConfig{}, fmt.Errorf("load provider config: %w", err)
	}

	return cfg, nil
}

func (s *setupService) SaveProviders(ctx context.Context, cfg models.ProviderConfig) error {
	if err := s.providers.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save provider config: %w", err)
	}

	s.logger.Info().
		Bool("mochi", cfg.Mochi.Enabled()).
		Bool("deepl", cfg.DeepL.Enabled()).
		Msg("provider config updated")

	return nil
}

// VerifyMochiKey implements [SetupService]. A key that can list decks is
// considered valid; the decks are returned for the deck selection step.
func (s *setupService) VerifyMochiKey(ctx context.Context, apiKey string) ([]models.Deck, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: empty api key", adapter.ErrAuthentication)
	}

	exporter, err := s.newExporter(s.adapterCfg, apiKey, s.logger)
	if err != nil {
		return nil, fmt.Errorf("construct exporter: %w", err)
	}

	decks, err := exporter.ListDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify export key: %w", err)
	}

	return decks, nil
}

// VerifyDeepLKey implements [SetupService]. It requests a sample translation
// with the candidate key and returns the translated text for display.
func (s *setupService) VerifyDeepLKey(ctx context.Context, apiKey string) (string, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", fmt.Errorf("%w: empty api key", adapter.ErrAuthentication)
	}

	translator, err := s.newTranslator(s.adapterCfg, apiKey, s.logger)
	if err != nil {
		return "", fmt.Errorf("construct translator: %w", err)
	}

	sample, err := translator.Translate(ctx, verifySampleText, models.EnglishToSpanish)
	if err != nil {
		return "", fmt.Errorf("verify translation key: %w", err)
	}

	return sample, nil
}
