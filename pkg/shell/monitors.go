package shell

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/miketth/swaymon/pkg/monitors"
	"codeberg.org/miketth/swaymon/pkg/prompt"
	"go.uber.org/multierr"
)

// ManageMonitors lets the user change state, rotation and position of selected
// outputs directly, without touching any workspace.
func (s *Shell) ManageMonitors() error {
	outputs, err := s.listOutputs()
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(outputs))
	byLabel := make(map[string]monitors.Output, len(outputs))
	for _, out := range outputs {
		label := out.Label()
		labels = append(labels, label)
		byLabel[label] = out
	}

	selected, err := s.selectMany("Select monitors to manage:", labels)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		s.printf("No monitors selected.")
		return nil
	}

	var errs error
	for _, label := range selected {
		actions, err := s.askOutputChanges(byLabel[label], label)
		switch {
		case errors.Is(err, prompt.ErrCanceled):
			continue
		case err != nil:
			return err
		}
		errs = multierr.Append(errs, monitors.Apply(s.ctrl, actions, s.log))
	}

	return errs
}

func (s *Shell) askOutputChanges(out monitors.Output, label string) ([]monitors.Action, error) {
	state, err := s.selectOne(
		fmt.Sprintf("Do you want to enable or disable %s?", label),
		[]string{noChange, enable, disable},
		noChange,
	)
	if err != nil {
		return nil, err
	}

	rotations := []string{noChange}
	for _, t := range monitors.Transforms {
		rotations = append(rotations, string(t))
	}
	rotation, err := s.selectOne(fmt.Sprintf("Set rotation for %s:", label), rotations, noChange)
	if err != nil {
		return nil, err
	}

	var position *monitors.Position
	text, err := s.inputText(
		fmt.Sprintf("Enter position for %s in format x,y (e.g., 0,0) or leave empty for no change", label),
		"",
		nil,
	)
	switch {
	case errors.Is(err, prompt.ErrCanceled):
	case err != nil:
		return nil, err
	case strings.TrimSpace(text) != "":
		pos, perr := monitors.ParsePosition(text)
		if perr != nil {
			s.printf("Invalid position format. Skipping position change.")
			break
		}
		position = &pos
	}

	var actions []monitors.Action
	switch state {
	case enable:
		actions = append(actions, monitors.Enable(out.Name))
	case disable:
		actions = append(actions, monitors.Disable(out.Name))
	}
	if rotation != noChange {
		actions = append(actions, monitors.SetTransform(out.Name, monitors.Transform(rotation)))
	}
	if position != nil {
		actions = append(actions, monitors.SetPosition(out.Name, *position))
	}
	return actions, nil
}
