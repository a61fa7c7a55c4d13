package tui

import (
	"fmt"

	"github.com/nvaldez/traduz/models"
)

type listModel struct {
	cards   []models.Card
	idx     int
	loading bool
	status  string
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (models.Card, bool) {
	if len(m.cards) == 0 || m.idx < 0 || m.idx >= len(m.cards) {
		return models.Card{}, false
	}
	return m.cards[m.idx], true
}

func directionTag(pair models.LanguagePair) string {
	if pair == models.SpanishToEnglish {
		return "[es]"
	}
	return "[en]"
}

func (m listModel) View() string {
	out := titleStyle.Render("Cards") + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.cards) == 0 {
		out += "No cards yet\n"
	} else {
		for i, card := range m.cards {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s#%-3d %s %s = %s  %s\n",
				cursor, card.ID, directionTag(card.LanguagePair), card.Front, card.Back,
				helpStyle.Render(card.CreatedAt.Format("2006-01-02")))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c copy translation  esc menu  ctrl+c quit")
	return out
}
