package monitors

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// LoadPolicy decides what happens when the store holds data that cannot be parsed.
type LoadPolicy string

const (
	// LoadReset continues with an empty document. The unreadable data is lost on
	// the next save.
	LoadReset LoadPolicy = "reset"
	// LoadAbort fails the operation and leaves the stored data alone.
	LoadAbort LoadPolicy = "abort"
)

func (p LoadPolicy) Valid() bool {
	return p == LoadReset || p == LoadAbort
}

// LoadDocument loads the store and applies policy to malformed data.
func LoadDocument(store WorkspaceStore, policy LoadPolicy, log *zap.SugaredLogger) (Document, error) {
	doc, err := store.Load()
	switch {
	case errors.Is(err, ErrMalformedStore) && policy != LoadAbort:
		log.Warnw("workspace store is unreadable, starting from an empty one", "error", err)
		return Document{Workspaces: []Workspace{}}, nil
	case err != nil:
		return Document{}, fmt.Errorf("load workspaces: %w", err)
	}

	if doc.Workspaces == nil {
		doc.Workspaces = []Workspace{}
	}
	return doc, nil
}
