package memory

import (
	"testing"

	"codeberg.org/miketth/swaymon/pkg/monitors"
)

func TestSave_CopiesDocument(t *testing.T) {
	store := NewWorkspaceStore()
	doc := monitors.Document{Workspaces: []monitors.Workspace{{Name: "work"}}}

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	doc.Workspaces[0].Name = "changed"

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Workspaces[0].Name != "work" {
		t.Fatalf("store shares state with the caller: %+v", loaded)
	}
}

func TestLoad_EmptyStore(t *testing.T) {
	doc, err := NewWorkspaceStore().Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Workspaces == nil || len(doc.Workspaces) != 0 {
		t.Fatalf("expected an empty, non-nil workspace list, got %+v", doc)
	}
}
