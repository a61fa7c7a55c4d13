package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nvaldez/traduz/internal/adapter"
	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/service"
	"github.com/nvaldez/traduz/internal/store"
	"github.com/nvaldez/traduz/internal/tui"
	"github.com/nvaldez/traduz/models"
)

type App struct {
	cfg       *config.Config
	cards     store.CardRepository
	providers store.ProviderConfigRepository
	setup     service.SetupService
	tui       *tui.TUI

	logger *logger.Logger
}

func NewApp(cfg *config.Config, cards store.CardRepository, providers store.ProviderConfigRepository, setup service.SetupService, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	return &App{
		cfg:       cfg,
		cards:     cards,
		providers: providers,
		setup:     setup,
		tui:       ui,
		logger:    logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	// A corrupt card store must stop the session before any write can make
	// things worse.
	cards, err := a.cards.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrStoreCorrupt) {
			return fmt.Errorf("card file %s is damaged, fix or remove it: %w", a.cfg.Storage.CardsPath, err)
		}
		return fmt.Errorf("open card store: %w", err)
	}
	a.logger.Info().Int("cards", len(cards)).Msg("card store loaded")

	providerCfg, err := a.setup.LoadProviders(ctx)
	if err != nil {
		return fmt.Errorf("load provider config: %w", err)
	}

	if a.needSetup() {
		// The previously stored configuration is passed in so the flow can
		// offer reusing its keys and deck instead of prompting from scratch.
		providerCfg, err = a.tui.SetupFlow(ctx, providerCfg)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("provider setup: %w", err)
		}
	}

	cardSvc, err := a.buildCardService(providerCfg)
	if err != nil {
		return err
	}

	if err = a.tui.MainLoop(ctx, cardSvc); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}

// needSetup reports whether the provider setup flow should run: either it
// was requested with the -setup flag, or no providers file exists yet.
func (a *App) needSetup() bool {
	if a.cfg.RunSetup {
		return true
	}

	_, err := os.Stat(a.cfg.Storage.ProvidersPath)
	return os.IsNotExist(err)
}

func (a *App) buildCardService(providerCfg models.ProviderConfig) (service.CardService, error) {
	translator, err := adapter.NewTranslator(a.cfg.Adapter, providerCfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create translator: %w", err)
	}

	var exporter adapter.CardExporter
	var deckID string
	if providerCfg.Mochi.Enabled() {
		exporter, err = adapter.NewMochiExporter(a.cfg.Adapter, providerCfg.Mochi.APIKey, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create exporter: %w", err)
		}
		deckID = providerCfg.Mochi.SelectedDeckID
	}

	return service.NewCardService(a.cards, translator, exporter, deckID, a.logger), nil
}
