package tui

import (
	"github.com/nvaldez/traduz/internal/service"
	"github.com/nvaldez/traduz/models"
)

type cardCreatedMsg struct {
	result service.CreateResult
	err    error
}

type cardsLoadedMsg struct {
	cards []models.Card
	err   error
}

type decksLoadedMsg struct {
	apiKey string
	decks  []models.Deck
	err    error
}

type deepLVerifiedMsg struct {
	apiKey string
	sample string
	err    error
}

type providersSavedMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
