package monitors

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type ActionKind int

const (
	ActionEnable ActionKind = iota
	ActionDisable
	ActionTransform
	ActionPosition
)

// Action is a single compositor command against one output.
type Action struct {
	Kind      ActionKind
	Output    string
	Transform Transform
	Position  Position
}

func Enable(output string) Action  { return Action{Kind: ActionEnable, Output: output} }
func Disable(output string) Action { return Action{Kind: ActionDisable, Output: output} }

func SetTransform(output string, t Transform) Action {
	return Action{Kind: ActionTransform, Output: output, Transform: t}
}

func SetPosition(output string, pos Position) Action {
	return Action{Kind: ActionPosition, Output: output, Position: pos}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionEnable:
		return fmt.Sprintf("enable %s", a.Output)
	case ActionDisable:
		return fmt.Sprintf("disable %s", a.Output)
	case ActionTransform:
		return fmt.Sprintf("set rotation of %s to %s", a.Output, a.Transform)
	case ActionPosition:
		return fmt.Sprintf("set position of %s to (%d, %d)", a.Output, a.Position.X, a.Position.Y)
	}
	return fmt.Sprintf("unknown action %d on %s", a.Kind, a.Output)
}

func (a Action) run(ctrl OutputController) error {
	switch a.Kind {
	case ActionEnable:
		return ctrl.SetEnabled(a.Output, true)
	case ActionDisable:
		return ctrl.SetEnabled(a.Output, false)
	case ActionTransform:
		return ctrl.SetTransform(a.Output, a.Transform)
	case ActionPosition:
		return ctrl.SetPosition(a.Output, a.Position.X, a.Position.Y)
	}
	return fmt.Errorf("unknown action kind: %d", a.Kind)
}

// Apply runs the actions one after another in the given order. A failing action is
// logged and does not stop the remaining ones; all failures are returned combined.
func Apply(ctrl OutputController, actions []Action, log *zap.SugaredLogger) error {
	var errs error
	for _, action := range actions {
		log.Infow("applying action", "action", action.String())
		if err := action.run(ctrl); err != nil {
			log.Warnw("action failed", "action", action.String(), "error", err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", action, err))
		}
	}
	return errs
}
