package monitors

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type fakeController struct {
	outputs  []Output
	queryErr error
	failOn   map[string]bool
	calls    []string
}

func (f *fakeController) ListOutputs() ([]Output, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.outputs, nil
}

func (f *fakeController) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn[call] {
		return errors.New("swaymsg exited with 1")
	}
	return nil
}

func (f *fakeController) SetEnabled(output string, enabled bool) error {
	if enabled {
		return f.record("enable " + output)
	}
	return f.record("disable " + output)
}

func (f *fakeController) SetTransform(output string, t Transform) error {
	return f.record(fmt.Sprintf("transform %s %s", output, t))
}

func (f *fakeController) SetPosition(output string, x, y int) error {
	return f.record(fmt.Sprintf("position %s %d %d", output, x, y))
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
