package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRight)
	if !f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Error("Frame should report both set actions")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("Zero-value frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero-value frame should allocate")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	if _, _, ok := f.Pointer(); ok {
		t.Error("New frame should have no pointer")
	}

	f.SetPointer(12, 7)
	x, y, ok := f.Pointer()
	if !ok || x != 12 || y != 7 {
		t.Errorf("Pointer() = (%d, %d, %v), expected (12, 7, true)", x, y, ok)
	}

	clone := f.Clone()
	f.Clear()
	if _, _, ok := f.Pointer(); ok {
		t.Error("Clear should drop the pointer")
	}
	if _, _, ok := clone.Pointer(); !ok {
		t.Error("Clone should keep its own pointer")
	}
}

func TestOutcomeRoundTrip(t *testing.T) {
	for _, o := range []Outcome{OutcomeNone, OutcomeWin, OutcomeLoss} {
		if got := ParseOutcome(o.String()); got != o {
			t.Errorf("ParseOutcome(%q) = %v, expected %v", o.String(), got, o)
		}
	}
}

func TestColorFromHex(t *testing.T) {
	if ColorFromHex("#FF5733") != ColorOrange {
		t.Error("#FF5733 should map to orange regardless of case")
	}
	if ColorFromHex("#123456") != ColorDefault {
		t.Error("Unknown colors should map to default")
	}
}
