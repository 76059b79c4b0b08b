package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/miketth/swaymon/pkg/monitors"
)

// WorkspaceStore keeps the workspaces in a single JSON file. The file is read on
// every Load and replaced on every Save; nothing is cached in between and no lock
// is taken, so concurrent writers race and the last one wins.
type WorkspaceStore struct {
	path string
}

func NewWorkspaceStore(filename string) *WorkspaceStore {
	return &WorkspaceStore{path: filename}
}

func (s *WorkspaceStore) Path() string {
	return s.path
}

// Load returns an empty document when the file does not exist. When the file
// cannot be decoded it returns an empty document together with an error wrapping
// monitors.ErrMalformedStore, leaving the decision to the caller.
func (s *WorkspaceStore) Load() (monitors.Document, error) {
	empty := monitors.Document{Workspaces: []monitors.Workspace{}}

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return empty, nil
	case err != nil:
		return empty, fmt.Errorf("read file: %w", err)
	}

	var doc monitors.Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return empty, fmt.Errorf("decode %s: %w: %w", s.path, monitors.ErrMalformedStore, err)
	}

	if doc.Workspaces == nil {
		doc.Workspaces = []monitors.Workspace{}
	}
	return doc, nil
}

func (s *WorkspaceStore) Save(doc monitors.Document) error {
	if doc.Workspaces == nil {
		doc.Workspaces = []monitors.Workspace{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(file.Name())

	enc := json.NewEncoder(file)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		file.Close()
		return fmt.Errorf("encode json: %w", err)
	}

	if err := file.Chmod(0644); err != nil {
		file.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(file.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
