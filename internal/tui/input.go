package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nvaldez/traduz/models"
)

type inputModel struct {
	input      textinput.Model
	pair       models.LanguagePair
	submitting bool
	spinner    spinner.Model
}

func newInputModel(pair models.LanguagePair) inputModel {
	ti := textinput.New()
	ti.Placeholder = "text to translate"
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return inputModel{input: ti, pair: pair, spinner: s}
}

func (m inputModel) View() string {
	out := titleStyle.Render("New card") + "  " + helpStyle.Render(directionLabel(m.pair)) + "\n\n"
	out += m.input.View() + "\n"

	if m.submitting {
		out += "\n" + m.spinner.View() + " Translating...\n"
	}

	out += "\n" + helpStyle.Render("enter translate  esc back")
	return out
}
