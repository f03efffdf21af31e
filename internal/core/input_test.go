package core

import "testing"

func TestInputFrameHeldAndPressed(t *testing.T) {
	f := NewInputFrame()
	f.Hold(KeyLeft)
	f.Press(KeyUp)

	if !f.IsHeld(KeyLeft) {
		t.Error("Left should be held")
	}
	if f.WasPressed(KeyLeft) {
		t.Error("holding a key must not mark it pressed")
	}
	if !f.WasPressed(KeyUp) {
		t.Error("Up should be pressed")
	}
	if f.IsHeld(KeyUp) {
		t.Error("pressing a key must not mark it held")
	}

	f.Clear()
	if f.IsHeld(KeyLeft) || f.WasPressed(KeyUp) {
		t.Error("Clear should reset both sets")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.IsHeld(KeyRight) || f.WasPressed(KeyStart) {
		t.Error("zero frame should report nothing")
	}

	// Mutators allocate lazily
	f.Hold(KeyRight)
	f.Press(KeyStart)
	if !f.IsHeld(KeyRight) || !f.WasPressed(KeyStart) {
		t.Error("zero frame should accept keys")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyNone:    "None",
		KeyLeft:    "Left",
		KeyRight:   "Right",
		KeyUp:      "Up",
		KeyStart:   "Start",
		KeyRestart: "Restart",
		Key(99):    "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, expected %q", int(k), got, want)
		}
	}
}
