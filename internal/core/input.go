package core

// Key is a logical key the simulation understands, abstracted from the
// physical device. The platform decides which physical keys map to which Key.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // Left arrow, A - run left
	KeyRight       // Right arrow, D - run right
	KeyUp          // Up arrow, W, Space - jump
	KeyStart       // P - start a run from the title screen
	KeyRestart     // R - restart after game over
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyStart:
		return "Start"
	case KeyRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame is the key state for one simulation frame.
// Held is level-triggered ("is the key down now"), Pressed is
// edge-triggered ("did the key go down during this frame").
type InputFrame struct {
	Held    map[Key]bool
	Pressed map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Key]bool),
		Pressed: make(map[Key]bool),
	}
}

// Hold marks a key as currently held.
func (f *InputFrame) Hold(k Key) {
	if f.Held == nil {
		f.Held = make(map[Key]bool)
	}
	f.Held[k] = true
}

// Press marks a key as pressed this frame.
func (f *InputFrame) Press(k Key) {
	if f.Pressed == nil {
		f.Pressed = make(map[Key]bool)
	}
	f.Pressed[k] = true
}

// IsHeld reports whether the key is held.
func (f InputFrame) IsHeld(k Key) bool {
	return f.Held[k]
}

// WasPressed reports whether the key was pressed this frame.
func (f InputFrame) WasPressed(k Key) bool {
	return f.Pressed[k]
}

// Clear resets both key sets for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}
