package tui

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{items: []string{"New card", "Browse cards", "Quit"}}
}

func (m menuModel) View() string {
	out := titleStyle.Render("traduz") + "\n\nWhat would you like to do?\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  ctrl+c quit")
	return out
}
