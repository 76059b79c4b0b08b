package monitors

import "testing"

func TestDryRun_QueriesButDoesNotRun(t *testing.T) {
	inner := &fakeController{outputs: []Output{{Name: "DP-1", Make: "LG", Model: "5K"}}}
	d := DryRun{Lister: inner, Log: testLogger()}

	ws := Workspace{Name: "work", Monitors: []MonitorProfile{{Description: "LG 5K", Transform: Transform90}}}
	plan, err := Activate(d, ws, testLogger())
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if len(plan.Actions) != 3 {
		t.Fatalf("expected 3 planned actions, got %v", plan.Actions)
	}
	if len(inner.calls) != 0 {
		t.Fatalf("expected no commands to reach the controller, got %v", inner.calls)
	}
}
