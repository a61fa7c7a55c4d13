package tui

import (
	"fmt"

	"github.com/nvaldez/traduz/internal/service"
)

type resultModel struct {
	result service.CreateResult
	status string
}

func (m resultModel) View() string {
	card := m.result.Card

	out := titleStyle.Render("Card saved") + "\n\n"
	out += fmt.Sprintf("  #%d  %s\n", card.ID, directionLabel(card.LanguagePair))
	out += "  Front: " + card.Front + "\n"
	out += "  Back:  " + card.Back + "\n\n"

	switch {
	case m.result.Exported:
		out += "Exported to Mochi.\n"
	case m.result.ExportErr != nil:
		out += warnStyle.Render("Export failed, card kept locally:") + "\n"
		out += m.result.ExportErr.Error() + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n another  c copy translation  esc menu")
	return out
}
