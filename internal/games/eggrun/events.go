package eggrun

import "fmt"

// Event is something that happened during a frame, for the presentation
// layer to react to (sounds, log lines). Events carry data only.
// The variants are JumpedEvent, ScoredEvent and GameOverEvent.
type Event interface {
	isEvent()
	String() string
}

// JumpedEvent is emitted when a jump is accepted.
type JumpedEvent struct{}

// ScoredEvent is emitted once per egg picked up. Score is the new total.
type ScoredEvent struct {
	Score int
}

// GameOverEvent is emitted on the frame the run ends.
type GameOverEvent struct {
	Reason Reason
}

func (JumpedEvent) isEvent()   {}
func (ScoredEvent) isEvent()   {}
func (GameOverEvent) isEvent() {}

func (JumpedEvent) String() string {
	return "jumped"
}

func (e ScoredEvent) String() string {
	return fmt.Sprintf("scored(%d)", e.Score)
}

func (e GameOverEvent) String() string {
	return "game_over(" + e.Reason.String() + ")"
}
