package monitors

import "go.uber.org/zap"

// DryRun queries real outputs but only logs the commands it is asked to run.
type DryRun struct {
	Lister OutputLister
	Log    *zap.SugaredLogger
}

func (d DryRun) ListOutputs() ([]Output, error) {
	return d.Lister.ListOutputs()
}

func (d DryRun) SetEnabled(name string, enabled bool) error {
	d.Log.Infow("dry run: set output state", "output", name, "enable", enabled)
	return nil
}

func (d DryRun) SetTransform(name string, transform Transform) error {
	d.Log.Infow("dry run: set output transform", "output", name, "transform", transform)
	return nil
}

func (d DryRun) SetPosition(name string, x, y int) error {
	d.Log.Infow("dry run: set output position", "output", name, "x", x, "y", y)
	return nil
}
