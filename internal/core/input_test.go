package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("New frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionDrop)
	if !f.Has(ActionLeft) || !f.Has(ActionDrop) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionDrop) {
		t.Error("Clear should remove all actions")
	}
	if f.Actions == nil {
		t.Error("Clear should keep the map for reuse")
	}

	// Zero value frame is usable
	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRotate, "Rotate"},
		{ActionDrop, "Drop"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
