package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nvaldez/traduz/models"
)

// enableModel is a yes/no prompt used for both provider enable questions.
type enableModel struct {
	title    string
	question string
}

func (m enableModel) View() string {
	out := titleStyle.Render(m.title) + "\n\n" + m.question + "\n"
	out += "\n" + helpStyle.Render("y yes  n no  ctrl+c quit")
	return out
}

// keyInputModel collects and verifies a provider API key.
type keyInputModel struct {
	title     string
	input     textinput.Model
	verifying bool
	spinner   spinner.Model
	// sample holds the verification translation shown after a DeepL key
	// checks out.
	sample string
}

func newKeyInputModel(title string) keyInputModel {
	ti := textinput.New()
	ti.Placeholder = "api key"
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 120
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return keyInputModel{title: title, input: ti, spinner: s}
}

func (m keyInputModel) View() string {
	out := titleStyle.Render(m.title) + "\n\n"
	out += m.input.View() + "\n"

	if m.verifying {
		out += "\n" + m.spinner.View() + " Verifying key...\n"
	}

	out += "\n" + helpStyle.Render("enter verify  esc skip provider")
	return out
}

// deckSelectModel picks the remote deck receiving exported cards.
type deckSelectModel struct {
	decks []models.Deck
	idx   int
}

func (m deckSelectModel) selected() (models.Deck, bool) {
	if len(m.decks) == 0 || m.idx < 0 || m.idx >= len(m.decks) {
		return models.Deck{}, false
	}
	return m.decks[m.idx], true
}

func (m deckSelectModel) View() string {
	out := titleStyle.Render("Mochi export") + "\n\nChoose the deck for new cards:\n\n"
	for i, deck := range m.decks {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + deck.Name + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  esc skip provider")
	return out
}

// setupDoneModel summarises the configuration about to be saved.
type setupDoneModel struct {
	cfg    models.ProviderConfig
	sample string
	saving bool
}

func (m setupDoneModel) View() string {
	out := titleStyle.Render("Setup complete") + "\n\n"

	if m.cfg.Mochi.Enabled() {
		out += "Mochi export: enabled\n"
	} else {
		out += "Mochi export: disabled\n"
	}
	if m.cfg.DeepL.Enabled() {
		out += "DeepL translation: enabled\n"
		if m.sample != "" {
			out += helpStyle.Render("  verification: \""+m.sample+"\"") + "\n"
		}
	} else {
		out += "DeepL translation: disabled, using the free MyMemory service\n"
	}

	if m.saving {
		out += "\nSaving...\n"
	}

	out += "\n" + helpStyle.Render("enter save and continue")
	return out
}
