package monitors

type OutputLister interface {
	ListOutputs() ([]Output, error)
}

type OutputController interface {
	OutputLister
	SetEnabled(output string, enabled bool) error
	SetTransform(output string, transform Transform) error
	SetPosition(output string, x, y int) error
}

type WorkspaceStore interface {
	Load() (Document, error)
	Save(doc Document) error
}
