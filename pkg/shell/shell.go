package shell

import (
	"errors"
	"fmt"
	"io"

	"codeberg.org/miketth/swaymon/pkg/monitors"
	"codeberg.org/miketth/swaymon/pkg/prompt"
	"go.uber.org/zap"
)

const (
	menuMonitors   = "Manage Monitors"
	menuWorkspaces = "Manage Workspaces"
	menuExit       = "Exit"

	wsActivate      = "Activate a Workspace"
	wsCreate        = "Create a New Workspace"
	wsCreateCurrent = "Create Current Settings as Workspace"
	wsDelete        = "Delete a Workspace"
	wsList          = "List Workspaces"
	wsBack          = "Back to Main Menu"

	noChange = "No Change"
	enable   = "Enable"
	disable  = "Disable"
)

// errPrompt marks failures of the prompt itself, as opposed to the user canceling.
var errPrompt = errors.New("prompt failed")

type Shell struct {
	ctrl   monitors.OutputController
	store  monitors.WorkspaceStore
	policy monitors.LoadPolicy
	prompt Prompter
	out    io.Writer
	log    *zap.SugaredLogger
}

func New(
	ctrl monitors.OutputController,
	store monitors.WorkspaceStore,
	policy monitors.LoadPolicy,
	prompter Prompter,
	out io.Writer,
	log *zap.SugaredLogger,
) *Shell {
	return &Shell{
		ctrl:   ctrl,
		store:  store,
		policy: policy,
		prompt: prompter,
		out:    out,
		log:    log,
	}
}

// Run shows the main menu until the user exits. Failed operations are reported
// and the menu is shown again; only a broken prompt ends the loop with an error.
func (s *Shell) Run() error {
	for {
		choice, err := s.selectOne("What do you want to do?", []string{menuMonitors, menuWorkspaces, menuExit}, "")
		switch {
		case errors.Is(err, prompt.ErrCanceled):
			return nil
		case err != nil:
			return err
		}

		switch choice {
		case menuMonitors:
			err = s.ManageMonitors()
		case menuWorkspaces:
			err = s.manageWorkspaces()
		case menuExit:
			return nil
		}

		if err := s.report(err); err != nil {
			return err
		}
	}
}

func (s *Shell) manageWorkspaces() error {
	for {
		choice, err := s.selectOne("Workspace Management Options:", []string{
			wsActivate, wsCreate, wsCreateCurrent, wsDelete, wsList, wsBack,
		}, "")
		switch {
		case errors.Is(err, prompt.ErrCanceled):
			return nil
		case err != nil:
			return err
		}

		switch choice {
		case wsActivate:
			err = s.ActivateWorkspace()
		case wsCreate:
			err = s.CreateWorkspace()
		case wsCreateCurrent:
			err = s.CreateFromCurrent()
		case wsDelete:
			err = s.DeleteWorkspaces()
		case wsList:
			err = s.ListWorkspaces()
		case wsBack:
			return nil
		}

		if err := s.report(err); err != nil {
			return err
		}
	}
}

// report prints an operation error for the user and passes prompt failures on.
func (s *Shell) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errPrompt):
		return err
	case errors.Is(err, prompt.ErrCanceled):
		s.printf("Canceled.")
	default:
		s.log.Debugw("operation failed", "error", err)
		s.printf("Error: %v", err)
	}
	return nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Shell) selectOne(title string, choices []string, def string) (string, error) {
	choice, err := s.prompt.SelectOne(title, choices, def)
	return choice, wrapPrompt(err)
}

func (s *Shell) selectMany(title string, choices []string) ([]string, error) {
	selected, err := s.prompt.SelectMany(title, choices)
	return selected, wrapPrompt(err)
}

func (s *Shell) inputText(title, def string, validate func(string) error) (string, error) {
	text, err := s.prompt.InputText(title, def, validate)
	return text, wrapPrompt(err)
}

func wrapPrompt(err error) error {
	if err == nil || errors.Is(err, prompt.ErrCanceled) {
		return err
	}
	return fmt.Errorf("%w: %w", errPrompt, err)
}

func (s *Shell) listOutputs() ([]monitors.Output, error) {
	outputs, err := s.ctrl.ListOutputs()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve monitor information: %w", err)
	}
	if len(outputs) == 0 {
		return nil, errors.New("no monitors found")
	}
	return outputs, nil
}

func (s *Shell) loadDocument() (monitors.Document, error) {
	return monitors.LoadDocument(s.store, s.policy, s.log)
}
