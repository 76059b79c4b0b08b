package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type multiSelectModel struct {
	title    string
	choices  []string
	theme    Theme
	useColor bool

	cursor   int
	selected map[string]bool
	err      error
}

func newMultiSelectModel(title string, choices []string, theme Theme, useColor bool) multiSelectModel {
	return multiSelectModel{
		title:    title,
		choices:  choices,
		theme:    theme,
		useColor: useColor,
		selected: make(map[string]bool),
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.err = ErrCanceled
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case tea.KeySpace:
		if len(m.choices) > 0 {
			choice := m.choices[m.cursor]
			m.selected[choice] = !m.selected[choice]
		}
	case tea.KeyEnter:
		return m, tea.Quit
	case tea.KeyRunes:
		if string(key.Runes) == "a" {
			all := len(m.selectedValues()) != len(m.choices)
			for _, c := range m.choices {
				m.selected[c] = all
			}
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	var b strings.Builder
	b.WriteString(render(m.theme.Header, m.useColor, m.title))
	b.WriteString("\n")
	b.WriteString(render(m.theme.Muted, m.useColor, indent+"space: toggle, a: all, enter: confirm, esc: cancel"))
	b.WriteString("\n")
	renderChoices(&b, m.choices, m.cursor, m.selected, m.theme, m.useColor)
	return b.String()
}

func (m multiSelectModel) selectedValues() []string {
	var out []string
	for _, c := range m.choices {
		if m.selected[c] {
			out = append(out, c)
		}
	}
	return out
}
