package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/egg-run/internal/core"
)

func TestTicksFor(t *testing.T) {
	tests := []struct {
		d        time.Duration
		rate     int
		expected uint64
	}{
		{FirstHold, 60, 33},
		{RepeatHold, 60, 5},
		{time.Millisecond, 60, 1},
		{time.Second, 30, 30},
	}

	for _, tc := range tests {
		if got := ticksFor(tc.d, tc.rate); got != tc.expected {
			t.Errorf("ticksFor(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
		}
	}
}

func TestKeyTrackerPressedForOneFrame(t *testing.T) {
	tr := NewKeyTracker(60)
	tr.KeyDown(core.KeyUp)

	f := tr.Frame()
	if !f.WasPressed(core.KeyUp) {
		t.Errorf("key should be pressed on the frame after the event")
	}

	f = tr.Frame()
	if f.WasPressed(core.KeyUp) {
		t.Errorf("key should not be pressed on later frames")
	}
}

func TestKeyTrackerFirstHold(t *testing.T) {
	tr := NewKeyTracker(60)
	tr.KeyDown(core.KeyRight)

	for i := 0; i < 33; i++ {
		if f := tr.Frame(); !f.IsHeld(core.KeyRight) {
			t.Fatalf("frame %d: key should still be held", i)
		}
	}
	if f := tr.Frame(); f.IsHeld(core.KeyRight) {
		t.Errorf("key should be released after the first hold window")
	}
}

func TestKeyTrackerRepeatHold(t *testing.T) {
	tr := NewKeyTracker(60)
	tr.KeyDown(core.KeyLeft)
	for i := 0; i < 20; i++ {
		tr.Frame()
	}

	// An auto-repeat arrives: the key now expires after the short window.
	tr.KeyDown(core.KeyLeft)
	for i := 0; i < 5; i++ {
		if f := tr.Frame(); !f.IsHeld(core.KeyLeft) {
			t.Fatalf("frame %d after repeat: key should be held", i)
		}
	}
	if f := tr.Frame(); f.IsHeld(core.KeyLeft) {
		t.Errorf("key should be released after the repeat window")
	}
}

func TestKeyTrackerRepeatIsNotAPress(t *testing.T) {
	tr := NewKeyTracker(60)
	tr.KeyDown(core.KeyUp)
	if f := tr.Frame(); !f.WasPressed(core.KeyUp) {
		t.Fatalf("first event should press the key")
	}

	// Auto-repeats every other tick keep the key held without pressing it.
	for i := 1; i < 120; i++ {
		if i%2 == 0 {
			tr.KeyDown(core.KeyUp)
		}
		f := tr.Frame()
		if f.WasPressed(core.KeyUp) {
			t.Fatalf("frame %d: auto-repeat should not press the key", i)
		}
		if !f.IsHeld(core.KeyUp) {
			t.Fatalf("frame %d: key should stay held while repeats arrive", i)
		}
	}

	// Once the hold lapses, the next event is a new press.
	for i := 0; i < 10; i++ {
		tr.Frame()
	}
	tr.KeyDown(core.KeyUp)
	if f := tr.Frame(); !f.WasPressed(core.KeyUp) {
		t.Errorf("event after release should press the key again")
	}
}

func TestKeyTrackerOppositeDirection(t *testing.T) {
	tr := NewKeyTracker(60)
	tr.KeyDown(core.KeyRight)
	tr.Frame()

	tr.KeyDown(core.KeyLeft)
	f := tr.Frame()

	if !f.IsHeld(core.KeyLeft) || f.IsHeld(core.KeyRight) {
		t.Errorf("pressing left should release right, held = %v", f.Held)
	}
}

func TestKeyTrackerReset(t *testing.T) {
	tr := NewKeyTracker(60)
	tr.KeyDown(core.KeyRight)
	tr.KeyDown(core.KeyStart)
	tr.Reset()

	f := tr.Frame()
	if len(f.Held) != 0 || len(f.Pressed) != 0 {
		t.Errorf("Reset should forget all keys, got held %v pressed %v", f.Held, f.Pressed)
	}
}
