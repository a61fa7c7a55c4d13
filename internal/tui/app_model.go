// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/traduz/internal/service"
	"github.com/nvaldez/traduz/models"
)

type screen int

const (
	screenMenu screen = iota
	screenDirection
	screenInput
	screenResult
	screenList
	screenSetupMochiEnable
	screenSetupMochiReuse
	screenSetupMochiKey
	screenSetupDeckReuse
	screenSetupDeckSelect
	screenSetupDeepLEnable
	screenSetupDeepLReuse
	screenSetupDeepLKey
	screenSetupDone
)

type appMode int

const (
	modeSetup appMode = iota
	modeMain
)

type appModel struct {
	ctx   context.Context
	cards service.CardService
	setup service.SetupService

	mode          appMode
	currentScreen screen

	menu      menuModel
	direction directionModel
	input     inputModel
	result    resultModel
	list      listModel

	mochiEnable enableModel
	mochiReuse  enableModel
	mochiKey    keyInputModel
	deckReuse   enableModel
	deckSelect  deckSelectModel
	deeplEnable enableModel
	deeplReuse  enableModel
	deeplKey    keyInputModel
	done        setupDoneModel

	// storedCfg is the provider configuration of the previous session,
	// offered for reuse before prompting for fresh credentials.
	storedCfg models.ProviderConfig

	// providerCfg accumulates the choices made during the setup flow and
	// is what gets saved at the end.
	providerCfg models.ProviderConfig
	sample      string
	saved       bool

	err          error
	showError    bool
	errorOverlay errorOverlayModel
}

func newSetupAppModel(ctx context.Context, setup service.SetupService, stored models.ProviderConfig) appModel {
	return appModel{
		ctx:           ctx,
		setup:         setup,
		mode:          modeSetup,
		currentScreen: screenSetupMochiEnable,
		storedCfg:     stored,
		mochiEnable: enableModel{
			title:    "Mochi export",
			question: "Export new cards to Mochi?",
		},
		mochiReuse: enableModel{
			title:    "Mochi export",
			question: "Use the stored API key?",
		},
		mochiKey: newKeyInputModel("Mochi export"),
		deeplEnable: enableModel{
			title:    "DeepL translation",
			question: "Use DeepL for translations? Without it the free MyMemory service is used.",
		},
		deeplReuse: enableModel{
			title:    "DeepL translation",
			question: "Use the stored API key?",
		},
		deeplKey: newKeyInputModel("DeepL translation"),
	}
}

func newMainAppModel(ctx context.Context, cards service.CardService) appModel {
	return appModel{
		ctx:           ctx,
		cards:         cards,
		mode:          modeMain,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		direction:     newDirectionModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case cardCreatedMsg:
		m.input.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.result = resultModel{result: msg.result}
		m.currentScreen = screenResult
		return m, nil
	case cardsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.cards = msg.cards
		if m.list.idx >= len(m.list.cards) {
			m.list.idx = len(m.list.cards) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case decksLoadedMsg:
		m.mochiKey.verifying = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if len(msg.decks) == 0 {
			m.showErrorf("The Mochi account has no decks. Create one first.")
			return m, nil
		}
		m.providerCfg.Mochi.APIKey = msg.apiKey
		m.deckSelect = deckSelectModel{decks: msg.decks}
		if deck, ok := findDeck(msg.decks, m.storedCfg.Mochi.SelectedDeckID); ok {
			m.deckReuse = enableModel{
				title:    "Mochi export",
				question: fmt.Sprintf("Use the previously selected deck %q?", deck.Name),
			}
			m.currentScreen = screenSetupDeckReuse
			return m, nil
		}
		m.currentScreen = screenSetupDeckSelect
		return m, nil
	case deepLVerifiedMsg:
		m.deeplKey.verifying = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.providerCfg.DeepL.APIKey = msg.apiKey
		m.sample = msg.sample
		m.enterSetupDone()
		return m, nil
	case providersSavedMsg:
		m.done.saving = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.saved = true
		return m, tea.Quit
	case copiedMsg:
		m.result.status = "Copied!"
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.result.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenDirection:
		return m.updateDirection(msg)
	case screenInput:
		return m.updateInput(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenList:
		return m.updateList(msg)
	case screenSetupMochiEnable:
		return m.updateMochiEnable(msg)
	case screenSetupMochiReuse:
		return m.updateMochiReuse(msg)
	case screenSetupMochiKey:
		return m.updateMochiKey(msg)
	case screenSetupDeckReuse:
		return m.updateDeckReuse(msg)
	case screenSetupDeckSelect:
		return m.updateDeckSelect(msg)
	case screenSetupDeepLEnable:
		return m.updateDeepLEnable(msg)
	case screenSetupDeepLReuse:
		return m.updateDeepLReuse(msg)
	case screenSetupDeepLKey:
		return m.updateDeepLKey(msg)
	case screenSetupDone:
		return m.updateSetupDone(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View()
	case screenDirection:
		body = m.direction.View()
	case screenInput:
		body = m.input.View()
	case screenResult:
		body = m.result.View()
	case screenList:
		body = m.list.View()
	case screenSetupMochiEnable:
		body = m.mochiEnable.View()
	case screenSetupMochiReuse:
		body = m.mochiReuse.View()
	case screenSetupMochiKey:
		body = m.mochiKey.View()
	case screenSetupDeckReuse:
		body = m.deckReuse.View()
	case screenSetupDeckSelect:
		body = m.deckSelect.View()
	case screenSetupDeepLEnable:
		body = m.deeplEnable.View()
	case screenSetupDeepLReuse:
		body = m.deeplReuse.View()
	case screenSetupDeepLKey:
		body = m.deeplKey.View()
	case screenSetupDone:
		body = m.done.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) enterSetupDone() {
	m.done = setupDoneModel{cfg: m.providerCfg, sample: m.sample}
	m.currentScreen = screenSetupDone
}

// ── main loop screens ────────────────────────────────────────────────────────

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.currentScreen = screenDirection
		case 1:
			m.list = newListModel()
			m.currentScreen = screenList
			return m, m.cmdLoadCards()
		case 2:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m appModel) updateDirection(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.direction.idx > 0 {
			m.direction.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.direction.idx < len(m.direction.pairs)-1 {
			m.direction.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.input = newInputModel(m.direction.selected())
		m.currentScreen = screenInput
	}
	return m, nil
}

func (m appModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && m.input.submitting {
		var cmd tea.Cmd
		m.input.spinner, cmd = m.input.spinner.Update(tick)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.input.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDirection
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			text := strings.TrimSpace(m.input.input.Value())
			if text == "" {
				m.showErrorf("Enter some text to translate")
				return m, nil
			}
			m.input.submitting = true
			return m, tea.Batch(m.input.spinner.Tick, m.cmdCreateCard(text, m.input.pair))
		}
	}

	var cmd tea.Cmd
	m.input.input, cmd = m.input.input.Update(msg)
	return m, cmd
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.again):
		m.input = newInputModel(m.result.result.Card.LanguagePair)
		m.currentScreen = screenInput
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.result.result.Card.Back)
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.cards)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		card, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(card.Back)
	}
	return m, nil
}

// ── setup flow screens ───────────────────────────────────────────────────────

func (m appModel) updateMochiEnable(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.storedCfg.Mochi.APIKey != "" {
			m.currentScreen = screenSetupMochiReuse
		} else {
			m.currentScreen = screenSetupMochiKey
		}
	case key.Matches(keyMsg, keys.no):
		m.providerCfg.Mochi = models.MochiConfig{}
		m.currentScreen = screenSetupDeepLEnable
	}
	return m, nil
}

func (m appModel) updateMochiReuse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.providerCfg.Mochi = models.MochiConfig{}
		m.currentScreen = screenSetupDeepLEnable
	case key.Matches(keyMsg, keys.yes):
		// The stored key goes through the same verification as a fresh
		// one, on the key screen so the spinner is visible.
		m.mochiKey.verifying = true
		m.currentScreen = screenSetupMochiKey
		return m, tea.Batch(m.mochiKey.spinner.Tick, m.cmdVerifyMochi(m.storedCfg.Mochi.APIKey))
	case key.Matches(keyMsg, keys.no):
		m.currentScreen = screenSetupMochiKey
	}
	return m, nil
}

func (m appModel) updateDeckReuse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.providerCfg.Mochi = models.MochiConfig{}
		m.currentScreen = screenSetupDeepLEnable
	case key.Matches(keyMsg, keys.yes):
		m.providerCfg.Mochi.SelectedDeckID = m.storedCfg.Mochi.SelectedDeckID
		m.currentScreen = screenSetupDeepLEnable
	case key.Matches(keyMsg, keys.no):
		m.currentScreen = screenSetupDeckSelect
	}
	return m, nil
}

func (m appModel) updateMochiKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && m.mochiKey.verifying {
		var cmd tea.Cmd
		m.mochiKey.spinner, cmd = m.mochiKey.spinner.Update(tick)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.mochiKey.verifying {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.providerCfg.Mochi = models.MochiConfig{}
			m.currentScreen = screenSetupDeepLEnable
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			apiKey := strings.TrimSpace(m.mochiKey.input.Value())
			if apiKey == "" {
				m.showErrorf("Enter the Mochi API key")
				return m, nil
			}
			m.mochiKey.verifying = true
			return m, tea.Batch(m.mochiKey.spinner.Tick, m.cmdVerifyMochi(apiKey))
		}
	}

	var cmd tea.Cmd
	m.mochiKey.input, cmd = m.mochiKey.input.Update(msg)
	return m, cmd
}

func (m appModel) updateDeckSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.providerCfg.Mochi = models.MochiConfig{}
		m.currentScreen = screenSetupDeepLEnable
	case key.Matches(keyMsg, keys.up):
		if m.deckSelect.idx > 0 {
			m.deckSelect.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.deckSelect.idx < len(m.deckSelect.decks)-1 {
			m.deckSelect.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		deck, ok := m.deckSelect.selected()
		if !ok {
			return m, nil
		}
		m.providerCfg.Mochi.SelectedDeckID = deck.ID
		m.currentScreen = screenSetupDeepLEnable
	}
	return m, nil
}

func (m appModel) updateDeepLEnable(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.storedCfg.DeepL.APIKey != "" {
			m.currentScreen = screenSetupDeepLReuse
		} else {
			m.currentScreen = screenSetupDeepLKey
		}
	case key.Matches(keyMsg, keys.no):
		m.providerCfg.DeepL = models.DeepLConfig{}
		m.enterSetupDone()
	}
	return m, nil
}

func (m appModel) updateDeepLReuse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.providerCfg.DeepL = models.DeepLConfig{}
		m.enterSetupDone()
	case key.Matches(keyMsg, keys.yes):
		m.deeplKey.verifying = true
		m.currentScreen = screenSetupDeepLKey
		return m, tea.Batch(m.deeplKey.spinner.Tick, m.cmdVerifyDeepL(m.storedCfg.DeepL.APIKey))
	case key.Matches(keyMsg, keys.no):
		m.currentScreen = screenSetupDeepLKey
	}
	return m, nil
}

func (m appModel) updateDeepLKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && m.deeplKey.verifying {
		var cmd tea.Cmd
		m.deeplKey.spinner, cmd = m.deeplKey.spinner.Update(tick)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.deeplKey.verifying {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.providerCfg.DeepL = models.DeepLConfig{}
			m.enterSetupDone()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			apiKey := strings.TrimSpace(m.deeplKey.input.Value())
			if apiKey == "" {
				m.showErrorf("Enter the DeepL API key")
				return m, nil
			}
			m.deeplKey.verifying = true
			return m, tea.Batch(m.deeplKey.spinner.Tick, m.cmdVerifyDeepL(apiKey))
		}
	}

	var cmd tea.Cmd
	m.deeplKey.input, cmd = m.deeplKey.input.Update(msg)
	return m, cmd
}

func (m appModel) updateSetupDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.enter) && !m.done.saving {
		m.done.saving = true
		return m, m.cmdSaveProviders(m.providerCfg)
	}
	return m, nil
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdCreateCard(text string, pair models.LanguagePair) tea.Cmd {
	ctx := m.ctx
	svc := m.cards
	return func() tea.Msg {
		result, err := svc.CreateCard(ctx, text, pair)
		return cardCreatedMsg{result: result, err: err}
	}
}

func (m appModel) cmdLoadCards() tea.Cmd {
	ctx := m.ctx
	svc := m.cards
	return func() tea.Msg {
		cards, err := svc.ListCards(ctx)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func (m appModel) cmdVerifyMochi(apiKey string) tea.Cmd {
	ctx := m.ctx
	svc := m.setup
	return func() tea.Msg {
		decks, err := svc.VerifyMochiKey(ctx, apiKey)
		return decksLoadedMsg{apiKey: apiKey, decks: decks, err: err}
	}
}

func (m appModel) cmdVerifyDeepL(apiKey string) tea.Cmd {
	ctx := m.ctx
	svc := m.setup
	return func() tea.Msg {
		sample, err := svc.VerifyDeepLKey(ctx, apiKey)
		return deepLVerifiedMsg{apiKey: apiKey, sample: sample, err: err}
	}
}

func (m appModel) cmdSaveProviders(cfg models.ProviderConfig) tea.Cmd {
	ctx := m.ctx
	svc := m.setup
	return func() tea.Msg {
		err := svc.SaveProviders(ctx, cfg)
		return providersSavedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func findDeck(decks []models.Deck, id string) (models.Deck, bool) {
	if id == "" {
		return models.Deck{}, false
	}
	for _, deck := range decks {
		if deck.ID == id {
			return deck, true
		}
	}
	return models.Deck{}, false
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
