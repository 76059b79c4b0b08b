package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	label     string
	def       string
	validate  func(string) error
	theme     Theme
	useColor  bool
	input     textinput.Model
	value     string
	err       error
	errorLine string
}

func newInputModel(label, def string, validate func(string) error, theme Theme, useColor bool) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = def
	ti.Focus()
	if useColor {
		ti.PlaceholderStyle = theme.Muted
	}
	return inputModel{
		label:    label,
		def:      def,
		validate: validate,
		theme:    theme,
		useColor: useColor,
		input:    ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = m.def
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errorLine = err.Error()
					return m, nil
				}
			}
			m.value = value
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	prefix := render(m.theme.Accent, m.useColor, stepPrefix)
	label := render(m.theme.Header, m.useColor, m.label)
	defaultText := ""
	if strings.TrimSpace(m.def) != "" {
		defaultText = fmt.Sprintf(" [default: %s]", m.def)
	}

	line := fmt.Sprintf("%s%s %s%s: %s\n", indent, prefix, label, defaultText, m.input.View())
	if m.errorLine != "" {
		connector := render(m.theme.Muted, m.useColor, logConnector)
		line += fmt.Sprintf("%s%s %s\n", indent+indent, connector, render(m.theme.Error, m.useColor, m.errorLine))
	}
	return line
}
