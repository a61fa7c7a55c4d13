package main

import (
	"fmt"

	"github.com/nvaldez/traduz/internal/client"
	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/internal/service"
	"github.com/nvaldez/traduz/internal/store"
	"github.com/nvaldez/traduz/internal/tui"
	"github.com/nvaldez/traduz/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	sessionID := utils.NewUUIDGenerator().Generate()
	log := logger.NewClientLogger("traduz").WithSession(sessionID)

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cards := store.NewCardRepository(cfg.Storage.CardsPath, log)
	providers := store.NewProviderConfigRepository(cfg.Storage.ProvidersPath, log)

	setup := service.NewSetupService(cfg.Adapter, providers, log)
	ui := tui.New(setup, log)

	app, err := client.NewApp(cfg, cards, providers, setup, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
