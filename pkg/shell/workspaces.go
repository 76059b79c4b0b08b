package shell

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/miketth/swaymon/pkg/monitors"
	"codeberg.org/miketth/swaymon/pkg/prompt"
)

// ActivateWorkspace asks for a saved workspace and applies it.
func (s *Shell) ActivateWorkspace() error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}
	if len(doc.Workspaces) == 0 {
		s.printf("No workspaces found.")
		return nil
	}

	name, err := s.selectOne("Select a workspace to activate:", doc.Names(), "")
	if err != nil {
		return err
	}

	return s.activate(doc, name)
}

// Activate applies the saved workspace with the given name.
func (s *Shell) Activate(name string) error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}
	return s.activate(doc, name)
}

func (s *Shell) activate(doc monitors.Document, name string) error {
	ws, ok := doc.Find(name)
	if !ok {
		return fmt.Errorf("workspace %q not found", name)
	}

	plan, err := monitors.Activate(s.ctrl, ws, s.log)
	if errors.Is(err, monitors.ErrQuery) {
		return fmt.Errorf("failed to retrieve monitor information: %w", err)
	}
	for _, desc := range plan.Unmatched {
		s.printf("Monitor with description '%s' not found.", desc)
	}
	for _, desc := range plan.Collisions {
		s.printf("Several monitors are described as '%s', the last one reported is used.", desc)
	}
	if err != nil {
		return err
	}

	s.printf("Workspace '%s' activated.", name)
	return nil
}

// CreateWorkspace builds a new workspace by asking about every connected output.
func (s *Shell) CreateWorkspace() error {
	doc, name, err := s.askNewName("Enter the name for the new workspace")
	if err != nil {
		return err
	}

	outputs, err := s.listOutputs()
	if err != nil {
		return err
	}

	s.printf("\nConfiguring monitors for workspace '%s':\n", name)
	profiles := make([]monitors.MonitorProfile, 0, len(outputs))
	for _, out := range outputs {
		profile, ok, err := s.askProfile(out)
		if err != nil {
			return err
		}
		if ok {
			profiles = append(profiles, profile)
		}
	}

	if err := s.addAndSave(doc, monitors.Workspace{Name: name, Monitors: profiles}); err != nil {
		return err
	}
	s.printf("Workspace '%s' created successfully.", name)
	return nil
}

// askProfile asks how out should be configured. Disabled outputs are not part of
// the workspace and yield ok == false.
func (s *Shell) askProfile(out monitors.Output) (monitors.MonitorProfile, bool, error) {
	label := fmt.Sprintf("%s (%s)", out.Description(), out.Name)

	state, err := s.selectOne(fmt.Sprintf("Do you want to enable %s?", label), []string{enable, disable}, enable)
	switch {
	case errors.Is(err, prompt.ErrCanceled):
		state = disable
	case err != nil:
		return monitors.MonitorProfile{}, false, err
	}
	if state == disable {
		return monitors.MonitorProfile{}, false, nil
	}

	rotations := make([]string, 0, len(monitors.Transforms))
	for _, t := range monitors.Transforms {
		rotations = append(rotations, string(t))
	}
	rotation, err := s.selectOne(fmt.Sprintf("Set rotation for %s:", label), rotations, string(out.Transform))
	switch {
	case errors.Is(err, prompt.ErrCanceled):
		rotation = string(monitors.TransformNormal)
	case err != nil:
		return monitors.MonitorProfile{}, false, err
	}

	var pos monitors.Position
	text, err := s.inputText(
		fmt.Sprintf("Enter position for %s in format x,y (e.g., 0,0)", label),
		"",
		monitors.ValidatePosition,
	)
	switch {
	case err != nil && !errors.Is(err, prompt.ErrCanceled):
		return monitors.MonitorProfile{}, false, err
	case err != nil || strings.TrimSpace(text) == "":
		s.printf("Position not set. Using default (0,0).")
	default:
		parsed, perr := monitors.ParsePosition(text)
		if perr != nil {
			s.printf("Invalid position format. Using default (0,0).")
		} else {
			pos = parsed
		}
	}

	return monitors.MonitorProfile{
		Description: out.Description(),
		State:       monitors.StateEnable,
		Transform:   monitors.Transform(rotation),
		Position:    &pos,
	}, true, nil
}

// CreateFromCurrent saves the current output configuration as a new workspace.
func (s *Shell) CreateFromCurrent() error {
	doc, name, err := s.askNewName("Enter the name for the new workspace based on current settings")
	if err != nil {
		return err
	}
	return s.saveCurrent(doc, name)
}

// SaveCurrent saves the current output configuration under name.
func (s *Shell) SaveCurrent(name string) error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if err := checkNewName(doc, name); err != nil {
		return err
	}
	return s.saveCurrent(doc, name)
}

func (s *Shell) saveCurrent(doc monitors.Document, name string) error {
	outputs, err := s.listOutputs()
	if err != nil {
		return err
	}

	ws := monitors.Workspace{Name: name, Monitors: monitors.Capture(outputs)}
	if err := s.addAndSave(doc, ws); err != nil {
		return err
	}
	s.printf("Workspace '%s' created successfully from current settings.", name)
	return nil
}

// DeleteWorkspaces asks which workspaces to remove and removes them.
func (s *Shell) DeleteWorkspaces() error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}
	if len(doc.Workspaces) == 0 {
		s.printf("No workspaces found.")
		return nil
	}

	names, err := s.selectMany("Select workspaces to delete:", doc.Names())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.printf("No workspaces selected for deletion.")
		return nil
	}

	return s.remove(doc, names)
}

// Delete removes the named workspaces.
func (s *Shell) Delete(names ...string) error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}

	for _, name := range names {
		if !doc.Has(name) {
			return fmt.Errorf("workspace %q not found", name)
		}
	}
	return s.remove(doc, names)
}

func (s *Shell) remove(doc monitors.Document, names []string) error {
	removed := doc.Remove(names...)
	if err := s.store.Save(doc); err != nil {
		return fmt.Errorf("save workspaces: %w", err)
	}
	for _, name := range removed {
		s.printf("Workspace '%s' deleted.", name)
	}
	return nil
}

// ListWorkspaces prints every saved workspace with its monitors.
func (s *Shell) ListWorkspaces() error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}
	if len(doc.Workspaces) == 0 {
		s.printf("No workspaces found.")
		return nil
	}

	for _, ws := range doc.Workspaces {
		s.printf("%s", ws.Name)
		for _, m := range ws.Monitors {
			state := m.State
			if state == "" {
				state = monitors.StateEnable
			}
			line := fmt.Sprintf("  %s: %s", describeProfile(m.Description), state)
			if m.Transform != "" {
				line += fmt.Sprintf(", rot: %s", m.Transform)
			}
			pos := m.Origin()
			line += fmt.Sprintf(", pos: (%d, %d)", pos.X, pos.Y)
			s.printf("%s", line)
		}
	}
	return nil
}

func describeProfile(desc string) string {
	if desc == "" {
		return "(no description)"
	}
	return desc
}

// askNewName loads the document and asks for an unused, non-empty name. Nothing
// is written when the name is rejected.
func (s *Shell) askNewName(title string) (monitors.Document, string, error) {
	doc, err := s.loadDocument()
	if err != nil {
		return monitors.Document{}, "", err
	}

	name, err := s.inputText(title, "", nil)
	switch {
	case errors.Is(err, prompt.ErrCanceled):
		name = ""
	case err != nil:
		return monitors.Document{}, "", err
	}

	name = strings.TrimSpace(name)
	if err := checkNewName(doc, name); err != nil {
		return monitors.Document{}, "", err
	}
	return doc, name, nil
}

func checkNewName(doc monitors.Document, name string) error {
	if name == "" {
		return monitors.ErrEmptyName
	}
	if doc.Has(name) {
		return fmt.Errorf("a workspace named '%s' already exists: %w", name, monitors.ErrWorkspaceExists)
	}
	return nil
}

func (s *Shell) addAndSave(doc monitors.Document, ws monitors.Workspace) error {
	if err := doc.Add(ws); err != nil {
		return err
	}
	if err := s.store.Save(doc); err != nil {
		return fmt.Errorf("save workspaces: %w", err)
	}
	s.log.Debugw("workspace saved", "workspace", ws.Name, "monitors", len(ws.Monitors))
	return nil
}
