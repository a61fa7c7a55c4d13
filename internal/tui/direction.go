package tui

import "github.com/nvaldez/traduz/models"

type directionModel struct {
	pairs []models.LanguagePair
	idx   int
}

func newDirectionModel() directionModel {
	return directionModel{pairs: []models.LanguagePair{
		models.EnglishToSpanish,
		models.SpanishToEnglish,
	}}
}

func directionLabel(pair models.LanguagePair) string {
	switch pair {
	case models.EnglishToSpanish:
		return "English to Spanish"
	case models.SpanishToEnglish:
		return "Spanish to English"
	default:
		return pair.String()
	}
}

func (m directionModel) selected() models.LanguagePair {
	return m.pairs[m.idx]
}

func (m directionModel) View() string {
	out := titleStyle.Render("New card") + "\n\nTranslation direction:\n\n"
	for i, pair := range m.pairs {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + directionLabel(pair) + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  esc back")
	return out
}
