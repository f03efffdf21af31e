package eggrun

import "github.com/vovakirdan/egg-run/internal/core"

// Direction is the horizontal intent derived from the held keys.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Intent is what the player asked for this frame.
type Intent struct {
	Dir     Direction
	Jump    bool // Up pressed this frame
	Start   bool
	Restart bool
}

// MapIntent reduces a raw input frame to an Intent.
// Holding both Left and Right cancels out, the same as holding neither.
func MapIntent(frame core.InputFrame) Intent {
	left := frame.IsHeld(core.KeyLeft)
	right := frame.IsHeld(core.KeyRight)

	dir := DirNone
	switch {
	case left && !right:
		dir = DirLeft
	case right && !left:
		dir = DirRight
	}

	return Intent{
		Dir:     dir,
		Jump:    frame.WasPressed(core.KeyUp),
		Start:   frame.WasPressed(core.KeyStart),
		Restart: frame.WasPressed(core.KeyRestart),
	}
}
