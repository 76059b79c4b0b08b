package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var ErrCanceled = errors.New("prompt canceled")

// Terminal asks questions with bubbletea programs on a terminal.
type Terminal struct {
	Theme    Theme
	UseColor bool
	In       io.Reader
	Out      io.Writer
}

func NewTerminal() *Terminal {
	return &Terminal{
		Theme:    DefaultTheme(),
		UseColor: isatty.IsTerminal(os.Stdout.Fd()),
		In:       os.Stdin,
		Out:      os.Stdout,
	}
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

// SelectOne returns the chosen entry of choices. The cursor starts on def when it
// is one of the choices.
func (t *Terminal) SelectOne(title string, choices []string, def string) (string, error) {
	out, err := t.run(newSelectModel(title, choices, def, t.Theme, t.UseColor))
	if err != nil {
		return "", err
	}
	final := out.(selectModel)
	if final.err != nil {
		return "", final.err
	}
	return final.value, nil
}

// SelectMany returns the checked entries of choices in list order. An empty
// selection is not an error.
func (t *Terminal) SelectMany(title string, choices []string) ([]string, error) {
	out, err := t.run(newMultiSelectModel(title, choices, t.Theme, t.UseColor))
	if err != nil {
		return nil, err
	}
	final := out.(multiSelectModel)
	if final.err != nil {
		return nil, final.err
	}
	return final.selectedValues(), nil
}

// InputText reads one line. Empty input accepts def; validate runs on the final
// value and keeps the prompt open until it passes.
func (t *Terminal) InputText(title, def string, validate func(string) error) (string, error) {
	out, err := t.run(newInputModel(title, def, validate, t.Theme, t.UseColor))
	if err != nil {
		return "", err
	}
	final := out.(inputModel)
	if final.err != nil {
		return "", final.err
	}
	return final.value, nil
}
