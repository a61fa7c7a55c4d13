package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvaldez/traduz/models"
)

// The setup flow is tested by driving the model's Update directly. Commands
// returned by Update are never executed, so no SetupService is needed; the
// messages their execution would produce are injected by hand.

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

func TestSetupFlow_ReusesStoredCredentials(t *testing.T) {
	stored := models.ProviderConfig{
		Mochi: models.MochiConfig{APIKey: "mochi-key", SelectedDeckID: "d2"},
		DeepL: models.DeepLConfig{APIKey: "deepl-key"},
	}
	m := newSetupAppModel(context.Background(), nil, stored)

	m, _ = step(t, m, keyRune('y'))
	assert.Equal(t, screenSetupMochiReuse, m.currentScreen)

	m, cmd := step(t, m, keyRune('y'))
	assert.Equal(t, screenSetupMochiKey, m.currentScreen)
	assert.True(t, m.mochiKey.verifying)
	require.NotNil(t, cmd, "reusing the stored key must trigger verification")

	decks := []models.Deck{{ID: "d1", Name: "Idioms"}, {ID: "d2", Name: "Spanish"}}
	m, _ = step(t, m, decksLoadedMsg{apiKey: "mochi-key", decks: decks})
	assert.Equal(t, screenSetupDeckReuse, m.currentScreen)
	assert.Contains(t, m.deckReuse.question, "Spanish")

	m, _ = step(t, m, keyRune('y'))
	assert.Equal(t, screenSetupDeepLEnable, m.currentScreen)
	assert.Equal(t, "mochi-key", m.providerCfg.Mochi.APIKey)
	assert.Equal(t, "d2", m.providerCfg.Mochi.SelectedDeckID)

	m, _ = step(t, m, keyRune('y'))
	assert.Equal(t, screenSetupDeepLReuse, m.currentScreen)

	m, cmd = step(t, m, keyRune('y'))
	assert.Equal(t, screenSetupDeepLKey, m.currentScreen)
	assert.True(t, m.deeplKey.verifying)
	require.NotNil(t, cmd)

	m, _ = step(t, m, deepLVerifiedMsg{apiKey: "deepl-key", sample: "hola"})
	assert.Equal(t, screenSetupDone, m.currentScreen)
	assert.Equal(t, "deepl-key", m.providerCfg.DeepL.APIKey)
}

func TestSetupFlow_NoStoredCredentialsPromptsForKey(t *testing.T) {
	m := newSetupAppModel(context.Background(), nil, models.ProviderConfig{})

	m, _ = step(t, m, keyRune('y'))

	assert.Equal(t, screenSetupMochiKey, m.currentScreen)
	assert.False(t, m.mochiKey.verifying)
}

func TestSetupFlow_DeclinedStoredKeyPromptsForFreshOne(t *testing.T) {
	stored := models.ProviderConfig{Mochi: models.MochiConfig{APIKey: "old-key"}}
	m := newSetupAppModel(context.Background(), nil, stored)

	m, _ = step(t, m, keyRune('y'))
	require.Equal(t, screenSetupMochiReuse, m.currentScreen)

	m, cmd := step(t, m, keyRune('n'))

	assert.Equal(t, screenSetupMochiKey, m.currentScreen)
	assert.False(t, m.mochiKey.verifying)
	assert.Nil(t, cmd)
}

func TestSetupFlow_StoredDeckGoneFallsBackToSelection(t *testing.T) {
	stored := models.ProviderConfig{
		Mochi: models.MochiConfig{APIKey: "mochi-key", SelectedDeckID: "deleted-deck"},
	}
	m := newSetupAppModel(context.Background(), nil, stored)

	m, _ = step(t, m, keyRune('y'))
	m, _ = step(t, m, keyRune('y'))

	decks := []models.Deck{{ID: "d1", Name: "Idioms"}}
	m, _ = step(t, m, decksLoadedMsg{apiKey: "mochi-key", decks: decks})

	assert.Equal(t, screenSetupDeckSelect, m.currentScreen)
}

func TestSetupFlow_EscapeOnReuseSkipsProvider(t *testing.T) {
	stored := models.ProviderConfig{Mochi: models.MochiConfig{APIKey: "mochi-key"}}
	m := newSetupAppModel(context.Background(), nil, stored)

	m, _ = step(t, m, keyRune('y'))
	require.Equal(t, screenSetupMochiReuse, m.currentScreen)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenSetupDeepLEnable, m.currentScreen)
	assert.Equal(t, models.MochiConfig{}, m.providerCfg.Mochi)
}

func TestCopyFailureShowsErrorOverlay(t *testing.T) {
	m := newMainAppModel(context.Background(), nil)
	m.currentScreen = screenList
	m.list.loading = false
	m.list.cards = []models.Card{{Front: "Hello", Back: "Hola"}}

	m, _ = step(t, m, copyFailedMsg{err: errors.New("copy to clipboard: no display")})

	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "clipboard")
	assert.False(t, m.list.loading, "a failed copy must not put the list back into loading")
}
