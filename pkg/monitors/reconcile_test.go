package monitors

import (
	"errors"
	"reflect"
	"testing"
)

func exampleOutputs() []Output {
	return []Output{
		{Name: "HDMI-1", Make: "Dell", Model: "U2", Active: true, Transform: TransformNormal},
		{Name: "DP-1", Make: "LG", Model: "5K", Active: false, Transform: TransformNormal},
	}
}

func TestDescription(t *testing.T) {
	cases := []struct {
		out  Output
		want string
	}{
		{Output{Make: "Dell", Model: "U2"}, "Dell U2"},
		{Output{Make: " Dell ", Model: "U2", Serial: "ABC"}, "Dell U2 ABC"},
		{Output{Make: "Dell", Serial: "ABC"}, "Dell  ABC"},
		{Output{}, ""},
	}

	for _, tc := range cases {
		if got := tc.out.Description(); got != tc.want {
			t.Fatalf("Description(%+v) = %q, want %q", tc.out, got, tc.want)
		}
	}
}

func TestNewPlan_Example(t *testing.T) {
	ws := Workspace{
		Name: "work",
		Monitors: []MonitorProfile{
			{Description: "Dell U2", State: StateEnable, Transform: Transform90, Position: &Position{}},
		},
	}

	plan := NewPlan(ws, exampleOutputs())

	want := []Action{
		Disable("DP-1"),
		Enable("HDMI-1"),
		SetTransform("HDMI-1", Transform90),
		SetPosition("HDMI-1", Position{}),
	}
	if !reflect.DeepEqual(plan.Actions, want) {
		t.Fatalf("expected actions %v, got %v", want, plan.Actions)
	}
	if len(plan.Unmatched) != 0 || len(plan.Collisions) != 0 {
		t.Fatalf("expected no unmatched or collisions, got %+v", plan)
	}
}

func TestNewPlan_DefaultsStateAndPosition(t *testing.T) {
	ws := Workspace{Monitors: []MonitorProfile{{Description: "LG 5K"}}}

	plan := NewPlan(ws, exampleOutputs())

	want := []Action{
		Disable("HDMI-1"),
		Enable("DP-1"),
		SetPosition("DP-1", Position{}),
	}
	if !reflect.DeepEqual(plan.Actions, want) {
		t.Fatalf("expected actions %v, got %v", want, plan.Actions)
	}
}

func TestNewPlan_DisableStateKeepsStoredOrder(t *testing.T) {
	ws := Workspace{Monitors: []MonitorProfile{
		{Description: "LG 5K", State: StateDisable, Position: &Position{X: 10, Y: 20}},
		{Description: "Dell U2", State: StateEnable, Transform: Transform180, Position: &Position{X: 1920}},
	}}

	plan := NewPlan(ws, exampleOutputs())

	want := []Action{
		Disable("DP-1"),
		SetPosition("DP-1", Position{X: 10, Y: 20}),
		Enable("HDMI-1"),
		SetTransform("HDMI-1", Transform180),
		SetPosition("HDMI-1", Position{X: 1920}),
	}
	if !reflect.DeepEqual(plan.Actions, want) {
		t.Fatalf("expected actions %v, got %v", want, plan.Actions)
	}
}

func TestNewPlan_UnmatchedIsSkipped(t *testing.T) {
	ws := Workspace{Monitors: []MonitorProfile{
		{Description: "Samsung Odyssey", State: StateEnable},
		{Description: "Dell U2", State: StateEnable},
	}}

	plan := NewPlan(ws, exampleOutputs())

	if !reflect.DeepEqual(plan.Unmatched, []string{"Samsung Odyssey"}) {
		t.Fatalf("expected Samsung Odyssey unmatched, got %v", plan.Unmatched)
	}
	want := []Action{
		Disable("DP-1"),
		Enable("HDMI-1"),
		SetPosition("HDMI-1", Position{}),
	}
	if !reflect.DeepEqual(plan.Actions, want) {
		t.Fatalf("expected actions %v, got %v", want, plan.Actions)
	}
}

func TestNewPlan_NeverTouchesUnknownOutputs(t *testing.T) {
	live := exampleOutputs()
	names := map[string]bool{}
	for _, out := range live {
		names[out.Name] = true
	}

	workspaces := []Workspace{
		{},
		{Monitors: []MonitorProfile{{Description: "nothing"}}},
		{Monitors: []MonitorProfile{{Description: "Dell U2"}, {Description: "LG 5K", State: StateDisable}}},
		{Monitors: []MonitorProfile{{Description: ""}}},
	}

	for _, ws := range workspaces {
		for _, action := range NewPlan(ws, live).Actions {
			if !names[action.Output] {
				t.Fatalf("action %v references an output that is not live", action)
			}
		}
	}
}

func TestNewPlan_CollisionLastWins(t *testing.T) {
	live := []Output{
		{Name: "eDP-1"},
		{Name: "HDMI-A-1"},
		{Name: "DP-2", Make: "Dell", Model: "U2"},
	}
	ws := Workspace{Monitors: []MonitorProfile{{Description: ""}}}

	plan := NewPlan(ws, live)

	if !reflect.DeepEqual(plan.Collisions, []string{""}) {
		t.Fatalf("expected empty description collision, got %v", plan.Collisions)
	}
	want := []Action{
		Disable("DP-2"),
		Disable("eDP-1"),
		Enable("HDMI-A-1"),
		SetPosition("HDMI-A-1", Position{}),
	}
	if !reflect.DeepEqual(plan.Actions, want) {
		t.Fatalf("expected actions %v, got %v", want, plan.Actions)
	}
}

func TestActivate_AppliesInOrder(t *testing.T) {
	ctrl := &fakeController{outputs: exampleOutputs()}
	ws := Workspace{Name: "work", Monitors: []MonitorProfile{
		{Description: "Dell U2", State: StateEnable, Transform: Transform90, Position: &Position{}},
	}}

	if _, err := Activate(ctrl, ws, testLogger()); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	want := []string{
		"disable DP-1",
		"enable HDMI-1",
		"transform HDMI-1 90",
		"position HDMI-1 0 0",
	}
	if !reflect.DeepEqual(ctrl.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, ctrl.calls)
	}
}

func TestActivate_QueryFailureTakesNoAction(t *testing.T) {
	ctrl := &fakeController{queryErr: ErrQuery}

	_, err := Activate(ctrl, Workspace{Name: "work"}, testLogger())
	if !errors.Is(err, ErrQuery) {
		t.Fatalf("expected ErrQuery, got %v", err)
	}
	if len(ctrl.calls) != 0 {
		t.Fatalf("expected no calls, got %v", ctrl.calls)
	}
}

func TestActivate_NoOutputs(t *testing.T) {
	ctrl := &fakeController{}

	_, err := Activate(ctrl, Workspace{Name: "work"}, testLogger())
	if !errors.Is(err, ErrQuery) {
		t.Fatalf("expected ErrQuery, got %v", err)
	}
}

func TestActivate_ContinuesAfterFailure(t *testing.T) {
	ctrl := &fakeController{
		outputs: exampleOutputs(),
		failOn:  map[string]bool{"disable DP-1": true},
	}
	ws := Workspace{Name: "work", Monitors: []MonitorProfile{{Description: "Dell U2"}}}

	_, err := Activate(ctrl, ws, testLogger())
	if err == nil {
		t.Fatalf("expected the failed disable to be reported")
	}

	want := []string{"disable DP-1", "enable HDMI-1", "position HDMI-1 0 0"}
	if !reflect.DeepEqual(ctrl.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, ctrl.calls)
	}
}

func TestCapture_OmitsInactive(t *testing.T) {
	live := []Output{
		{Name: "HDMI-1", Make: "Dell", Model: "U2", Active: true, Transform: Transform90, Position: Position{X: 1920}},
		{Name: "DP-1", Make: "LG", Model: "5K", Active: false, Transform: TransformNormal},
	}

	got := Capture(live)

	want := []MonitorProfile{
		{Description: "Dell U2", State: StateEnable, Transform: Transform90, Position: &Position{X: 1920}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// Capture leaves inactive outputs out of the workspace, so re-activating it against
// the same outputs turns them off through the disable pass rather than through a
// saved disable entry.
func TestCaptureThenActivate_RoundTrip(t *testing.T) {
	live := []Output{
		{Name: "HDMI-1", Make: "Dell", Model: "U2", Active: true, Transform: TransformNormal},
		{Name: "DP-1", Make: "LG", Model: "5K", Active: false, Transform: TransformNormal},
		{Name: "eDP-1", Make: "BOE", Model: "0x095F", Active: true, Transform: TransformNormal, Position: Position{X: 2560}},
	}
	ws := Workspace{Name: "now", Monitors: Capture(live)}

	enabled := map[string]bool{}
	for _, action := range NewPlan(ws, live).Actions {
		switch action.Kind {
		case ActionEnable:
			enabled[action.Output] = true
		case ActionDisable:
			enabled[action.Output] = false
		}
	}

	for _, out := range live {
		if enabled[out.Name] != out.Active {
			t.Fatalf("output %s: expected enabled=%t after round trip, got %t", out.Name, out.Active, enabled[out.Name])
		}
	}
}
