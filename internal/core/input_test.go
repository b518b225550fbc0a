package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionLaunch)

	if !f.Has(ActionLeft) || !f.Has(ActionLaunch) {
		t.Error("set actions should be present")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should be absent")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionLaunch) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-value frame must be safe to query and set.
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	c := f.Clone()
	if !c.Has(ActionRight) {
		t.Error("clone should carry actions")
	}

	c.Set(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("mutating clone should not affect original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionLaunch, "Launch"},
		{ActionPause, "Pause"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}
