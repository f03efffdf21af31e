package eggrun

import "fmt"

// Thresholds shown by the HUD. They are fixed rules of the game rather than
// configuration.
const (
	HouseThreshold = 2 // Eggs needed for the house to end the run
	WinThreshold   = 5 // Eggs needed for a full win
	MemeCount      = 8 // Number of alternate endings
)

// State is the top-level game state. It is one of StartState, GameState or
// GameOverState; the set is closed.
type State interface {
	isState()
}

// StartState is the title screen before the first run.
type StartState struct{}

// GameState is an active run.
type GameState struct {
	World *World
}

// GameOverState is the terminal screen of a run.
type GameOverState struct {
	Reason Reason
}

func (StartState) isState()    {}
func (GameState) isState()     {}
func (GameOverState) isState() {}

// DeathCause says what killed the player.
type DeathCause int

const (
	CauseChicken DeathCause = iota
	CauseSpike
	CauseFall
)

func (c DeathCause) String() string {
	switch c {
	case CauseChicken:
		return "chicken"
	case CauseSpike:
		return "spike"
	case CauseFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Reason is why a run ended: DeathReason, EndReason or WinReason.
type Reason interface {
	isReason()
	String() string
}

// DeathReason ends the run with a loss.
type DeathReason struct {
	Cause DeathCause
	Score int
}

// EndReason is reaching the house with some eggs but not enough to win.
// Meme selects one of MemeCount endings.
type EndReason struct {
	Meme int
}

// WinReason is reaching the house with enough eggs.
type WinReason struct{}

func (DeathReason) isReason() {}
func (EndReason) isReason()   {}
func (WinReason) isReason()   {}

func (r DeathReason) String() string {
	return fmt.Sprintf("death(%s, score=%d)", r.Cause, r.Score)
}

func (r EndReason) String() string {
	return fmt.Sprintf("end(meme=%d)", r.Meme)
}

func (WinReason) String() string {
	return "win"
}
