package monitors

import "fmt"

// Document is everything the workspace store persists.
type Document struct {
	Workspaces []Workspace `json:"workspaces"`
}

func (d Document) Names() []string {
	names := make([]string, 0, len(d.Workspaces))
	for _, ws := range d.Workspaces {
		names = append(names, ws.Name)
	}
	return names
}

func (d Document) Find(name string) (Workspace, bool) {
	for _, ws := range d.Workspaces {
		if ws.Name == name {
			return ws, true
		}
	}
	return Workspace{}, false
}

func (d Document) Has(name string) bool {
	_, ok := d.Find(name)
	return ok
}

// Add appends ws. Names are only checked here, the document itself does not
// prevent duplicates.
func (d *Document) Add(ws Workspace) error {
	if ws.Name == "" {
		return ErrEmptyName
	}
	if d.Has(ws.Name) {
		return fmt.Errorf("%q: %w", ws.Name, ErrWorkspaceExists)
	}
	if ws.Monitors == nil {
		ws.Monitors = []MonitorProfile{}
	}
	d.Workspaces = append(d.Workspaces, ws)
	return nil
}

// Remove drops every workspace with one of the given names and returns the names
// that were actually removed.
func (d *Document) Remove(names ...string) []string {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	var removed []string
	kept := make([]Workspace, 0, len(d.Workspaces))
	for _, ws := range d.Workspaces {
		if drop[ws.Name] {
			removed = append(removed, ws.Name)
			continue
		}
		kept = append(kept, ws)
	}
	d.Workspaces = kept
	return removed
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{Workspaces: make([]Workspace, 0, len(d.Workspaces))}
	for _, ws := range d.Workspaces {
		monitors := make([]MonitorProfile, 0, len(ws.Monitors))
		for _, m := range ws.Monitors {
			if m.Position != nil {
				pos := *m.Position
				m.Position = &pos
			}
			monitors = append(monitors, m)
		}
		out.Workspaces = append(out.Workspaces, Workspace{Name: ws.Name, Monitors: monitors})
	}
	return out
}
