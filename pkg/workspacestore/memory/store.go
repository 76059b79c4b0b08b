package memory

import (
	"sync"

	"codeberg.org/miketth/swaymon/pkg/monitors"
)

type WorkspaceStore struct {
	doc  monitors.Document
	lock sync.Mutex
}

func NewWorkspaceStore(workspaces ...monitors.Workspace) *WorkspaceStore {
	return &WorkspaceStore{
		doc: monitors.Document{Workspaces: workspaces}.Clone(),
	}
}

func (s *WorkspaceStore) Load() (monitors.Document, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.doc.Clone(), nil
}

func (s *WorkspaceStore) Save(doc monitors.Document) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc = doc.Clone()
	return nil
}
