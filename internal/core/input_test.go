package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionFire, ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Fatal("FrameOf should set all given actions")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestHoldTrackerKeepsActionForWindow(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionLeft, 10)

	for tick := 10; tick < 13; tick++ {
		f := NewInputFrame()
		h.Apply(&f, tick)
		if !f.Has(ActionLeft) {
			t.Errorf("tick %d: Left should still be held", tick)
		}
	}

	f := NewInputFrame()
	h.Apply(&f, 13)
	if f.Has(ActionLeft) {
		t.Error("Left should be released once the window passes")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionRight, 0)
	h.Press(ActionRight, 2)

	f := NewInputFrame()
	h.Apply(&f, 4)
	if !f.Has(ActionRight) {
		t.Error("a repeated press should extend the hold window")
	}
}

func TestHoldTrackerOppositeDirectionReleases(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(ActionLeft, 0)
	h.Press(ActionRight, 1)

	f := NewInputFrame()
	h.Apply(&f, 2)
	if f.Has(ActionLeft) {
		t.Error("pressing Right should release Left")
	}
	if !f.Has(ActionRight) {
		t.Error("Right should be held")
	}

	h.Reset()
	f.Clear()
	h.Apply(&f, 2)
	if f.Has(ActionRight) {
		t.Error("Reset should release everything")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", ColorRed, true},
		{"Bright-Green", ColorBrightGreen, true},
		{" yellow ", ColorYellow, true},
		{"ultraviolet", ColorDefault, false},
	}
	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventShoot}, {Kind: EventKill, Value: 10}}}
	if !r.Has(EventKill) {
		t.Error("Has should find EventKill")
	}
	if r.Has(EventGameOver) {
		t.Error("Has should not find EventGameOver")
	}
}
