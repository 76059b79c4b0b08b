package prompt

import "github.com/charmbracelet/lipgloss"

const (
	indent       = "  "
	stepPrefix   = "›"
	logConnector = "└─"
	checked      = "[x]"
	unchecked    = "[ ]"
)

type Theme struct {
	Header lipgloss.Style
	Accent lipgloss.Style
	Cursor lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Cursor: lipgloss.NewStyle().Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func render(style lipgloss.Style, useColor bool, text string) string {
	if useColor {
		return style.Render(text)
	}
	return text
}
