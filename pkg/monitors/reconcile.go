package monitors

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Plan is the outcome of reconciling a workspace against the live outputs.
type Plan struct {
	Actions []Action

	// Unmatched holds saved descriptions that no live output carries.
	Unmatched []string

	// Collisions holds descriptions shared by more than one live output. The last
	// output reported by the compositor wins the lookup.
	Collisions []string
}

// NewPlan computes the actions that realize ws on the live outputs. Every live output
// not claimed by the workspace is disabled first, then each saved monitor is applied
// in stored order.
func NewPlan(ws Workspace, live []Output) Plan {
	var plan Plan

	byDescription := make(map[string]string, len(live))
	seen := make(map[string]bool, len(live))
	for _, out := range live {
		desc := out.Description()
		if _, dup := byDescription[desc]; dup && !seen[desc] {
			plan.Collisions = append(plan.Collisions, desc)
			seen[desc] = true
		}
		byDescription[desc] = out.Name
	}

	targets := make(map[string]bool, len(ws.Monitors))
	for _, m := range ws.Monitors {
		name, ok := byDescription[m.Description]
		if !ok {
			plan.Unmatched = append(plan.Unmatched, m.Description)
			continue
		}
		targets[name] = true
	}

	var toDisable []string
	for _, out := range live {
		if !targets[out.Name] {
			toDisable = append(toDisable, out.Name)
		}
	}
	sort.Strings(toDisable)
	toDisable = dedup(toDisable)
	for _, name := range toDisable {
		plan.Actions = append(plan.Actions, Disable(name))
	}

	for _, m := range ws.Monitors {
		name, ok := byDescription[m.Description]
		if !ok {
			continue
		}

		if m.State.Enabled() {
			plan.Actions = append(plan.Actions, Enable(name))
		} else {
			plan.Actions = append(plan.Actions, Disable(name))
		}
		if m.Transform != "" {
			plan.Actions = append(plan.Actions, SetTransform(name, m.Transform))
		}
		plan.Actions = append(plan.Actions, SetPosition(name, m.Origin()))
	}

	return plan
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i > 0 && sorted[i-1] == s {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Activate queries the live outputs and applies ws to them. A failed query aborts
// before any action is taken. Unmatched monitors and failing actions are logged and
// skipped; the returned plan lists what was attempted.
func Activate(ctrl OutputController, ws Workspace, log *zap.SugaredLogger) (Plan, error) {
	live, err := ctrl.ListOutputs()
	if err != nil {
		return Plan{}, err
	}
	if len(live) == 0 {
		return Plan{}, fmt.Errorf("%w: no outputs found", ErrQuery)
	}

	plan := NewPlan(ws, live)
	for _, desc := range plan.Collisions {
		log.Warnw("several outputs share a description, using the last one", "description", desc)
	}
	for _, desc := range plan.Unmatched {
		log.Infow("monitor not connected, skipping", "workspace", ws.Name, "description", desc)
	}

	if err := Apply(ctrl, plan.Actions, log); err != nil {
		return plan, fmt.Errorf("activate %q: %w", ws.Name, err)
	}
	return plan, nil
}

// Capture records every active output as an enabled monitor at its current
// transform and position. Inactive outputs are left out; activating the result
// turns them off through the disable pass.
func Capture(live []Output) []MonitorProfile {
	profiles := make([]MonitorProfile, 0, len(live))
	for _, out := range live {
		if !out.Active {
			continue
		}
		pos := out.Position
		profiles = append(profiles, MonitorProfile{
			Description: out.Description(),
			State:       StateEnable,
			Transform:   out.Transform,
			Position:    &pos,
		})
	}
	return profiles
}
