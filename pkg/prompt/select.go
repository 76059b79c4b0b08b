package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	title    string
	choices  []string
	theme    Theme
	useColor bool

	input    textinput.Model
	filtered []string
	cursor   int

	value string
	err   error
}

func newSelectModel(title string, choices []string, def string, theme Theme, useColor bool) selectModel {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "filter"
	input.Focus()
	if useColor {
		input.PlaceholderStyle = theme.Muted
	}

	m := selectModel{
		title:    title,
		choices:  choices,
		theme:    theme,
		useColor: useColor,
		input:    input,
	}
	m.filtered = m.filterChoices()
	for i, c := range m.filtered {
		if c == def {
			m.cursor = i
		}
	}
	return m
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter:
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.value = m.filtered[m.cursor]
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = m.filterChoices()
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	return m, cmd
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(render(m.theme.Header, m.useColor, m.title))
	b.WriteString("\n")

	prefix := render(m.theme.Accent, m.useColor, stepPrefix)
	b.WriteString(fmt.Sprintf("%s%s %s\n", indent, prefix, m.input.View()))
	renderChoices(&b, m.filtered, m.cursor, nil, m.theme, m.useColor)
	return b.String()
}

func (m selectModel) filterChoices() []string {
	q := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if q == "" {
		return append([]string(nil), m.choices...)
	}
	var out []string
	for _, c := range m.choices {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out
}

func renderChoices(b *strings.Builder, items []string, cursor int, marks map[string]bool, theme Theme, useColor bool) {
	connector := render(theme.Muted, useColor, logConnector)
	if len(items) == 0 {
		b.WriteString(fmt.Sprintf("%s%s %s\n", indent+indent, connector, render(theme.Muted, useColor, "no matches")))
		return
	}

	for i, item := range items {
		display := item
		if marks != nil {
			mark := unchecked
			if marks[item] {
				mark = checked
			}
			display = mark + " " + display
		}
		if i == cursor {
			display = render(theme.Cursor, useColor, display)
			b.WriteString(fmt.Sprintf("%s%s %s\n", indent, render(theme.Accent, useColor, stepPrefix), display))
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", indent+indent, connector, display))
	}
}
