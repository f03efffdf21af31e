package tui

import (
	"time"

	"github.com/vovakirdan/egg-run/internal/core"
)

// Terminals report a key once, then again on every auto-repeat, but never
// report the release. A key therefore counts as held for a while after its
// last event: long enough after the first event to bridge the initial
// auto-repeat delay, and shorter once repeats are arriving.
const (
	FirstHold  = 550 * time.Millisecond
	RepeatHold = 90 * time.Millisecond
)

type heldKey struct {
	last      uint64 // Tick of the most recent event
	repeating bool
}

// KeyTracker turns a stream of key events into per-frame input.
// A fresh press marks its key as pressed for the next frame only; held
// state expires after a hold window measured in ticks.
type KeyTracker struct {
	tick    uint64
	first   uint64
	repeat  uint64
	held    map[core.Key]*heldKey
	pressed map[core.Key]bool
}

// NewKeyTracker creates a tracker for a simulation running at tickRate
// frames per second.
func NewKeyTracker(tickRate int) *KeyTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &KeyTracker{
		first:   ticksFor(FirstHold, tickRate),
		repeat:  ticksFor(RepeatHold, tickRate),
		held:    make(map[core.Key]*heldKey),
		pressed: make(map[core.Key]bool),
	}
}

// ticksFor converts a duration to a whole number of ticks, at least one.
func ticksFor(d time.Duration, tickRate int) uint64 {
	n := uint64(d * time.Duration(tickRate) / time.Second)
	return max(n, 1)
}

// KeyDown records a key event for the frame being collected.
// Only a fresh press marks the key as pressed; an event for a key that is
// still held is an auto-repeat and only extends the hold.
// A direction releases the opposite one: the terminal only repeats the most
// recent key, so the other has been let go or is about to be.
func (t *KeyTracker) KeyDown(k core.Key) {
	switch k {
	case core.KeyLeft:
		delete(t.held, core.KeyRight)
	case core.KeyRight:
		delete(t.held, core.KeyLeft)
	}

	if h, ok := t.held[k]; ok && t.active(h) {
		h.last = t.tick
		h.repeating = true
		return
	}
	t.pressed[k] = true
	t.held[k] = &heldKey{last: t.tick}
}

// Frame returns the input for the current tick and advances to the next.
func (t *KeyTracker) Frame() core.InputFrame {
	frame := core.NewInputFrame()

	for k := range t.pressed {
		frame.Press(k)
	}
	for k, h := range t.held {
		if t.active(h) {
			frame.Hold(k)
		} else {
			delete(t.held, k)
		}
	}

	clear(t.pressed)
	t.tick++
	return frame
}

// Reset forgets every key, for example after the run restarts.
func (t *KeyTracker) Reset() {
	clear(t.held)
	clear(t.pressed)
}

func (t *KeyTracker) active(h *heldKey) bool {
	window := t.first
	if h.repeating {
		window = t.repeat
	}
	return t.tick-h.last < window
}
