package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionCancel) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionCancel)
	if !f.Has(ActionCancel) {
		t.Error("Has(ActionCancel) should be true after Set")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(ActionQuit) should be false")
	}

	var zero InputFrame
	zero.Set(ActionNone)
	if zero.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
	zero.Set(ActionRestart)
	zero.Set(ActionQuit)
	if !zero.Has(ActionRestart) || !zero.Has(ActionQuit) || zero.Has(ActionCancel) {
		t.Errorf("zero frame after two Sets = %+v", zero)
	}
	if zero.Has(Action(200)) {
		t.Error("out of range action should not be reported")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Press(12, 7)
	f.Set(ActionCancel)

	f.Clear()

	if f.Pressed {
		t.Error("Pressed should be reset by Clear")
	}
	if f.Has(ActionCancel) {
		t.Error("actions should be reset by Clear")
	}
	if !f.Pointer.Valid || f.Pointer.X != 12 || f.Pointer.Y != 7 {
		t.Errorf("pointer should survive Clear, got %+v", f.Pointer)
	}
}

func TestInputFramePressSurvivesMotion(t *testing.T) {
	f := NewInputFrame()
	f.Press(5, 10)
	f.MovePointer(12, 10)

	if !f.Pressed {
		t.Fatal("motion should not drop the press")
	}
	if f.PressedAt != (Pointer{X: 5, Y: 10, Valid: true}) {
		t.Errorf("PressedAt = %+v, want the press position", f.PressedAt)
	}
	if f.Pointer != (Pointer{X: 12, Y: 10, Valid: true}) {
		t.Errorf("Pointer = %+v, want the latest motion", f.Pointer)
	}

	f.Clear()
	if f.PressedAt.Valid {
		t.Errorf("Clear should drop PressedAt, got %+v", f.PressedAt)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionCancel, "Cancel"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
