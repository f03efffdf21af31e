// Package audio turns Egg Run events into sound. Cues are synthesized at
// startup and played through oto; the simulation never touches audio.
package audio

import "github.com/vovakirdan/egg-run/internal/games/eggrun"

// Cue identifies a sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueCollect
	CueScream   // Hit by a chicken
	CueBump     // Hit a spike
	CueGameOver // Any death, after the hit
	CueMagic    // Meme ending
	CueSuccess  // Win
)

// AllCues lists every cue in declaration order.
var AllCues = []Cue{CueJump, CueCollect, CueScream, CueBump, CueGameOver, CueMagic, CueSuccess}

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCollect:
		return "collect"
	case CueScream:
		return "scream"
	case CueBump:
		return "bump"
	case CueGameOver:
		return "game_over"
	case CueMagic:
		return "magic"
	case CueSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// CuesFor returns the cues for an event, in the order they play.
// A death by chicken or spike plays the hit and then the game over sting;
// a fall plays only the sting. Unknown events have none.
func CuesFor(ev eggrun.Event) []Cue {
	switch e := ev.(type) {
	case eggrun.JumpedEvent:
		return []Cue{CueJump}
	case eggrun.ScoredEvent:
		return []Cue{CueCollect}
	case eggrun.GameOverEvent:
		return cuesForReason(e.Reason)
	}
	return nil
}

func cuesForReason(r eggrun.Reason) []Cue {
	switch r := r.(type) {
	case eggrun.DeathReason:
		switch r.Cause {
		case eggrun.CauseChicken:
			return []Cue{CueScream, CueGameOver}
		case eggrun.CauseSpike:
			return []Cue{CueBump, CueGameOver}
		}
		return []Cue{CueGameOver}
	case eggrun.EndReason:
		return []Cue{CueMagic}
	case eggrun.WinReason:
		return []Cue{CueSuccess}
	}
	return nil
}

// Sink reacts to game events with sound. Play must not block the caller.
type Sink interface {
	Play(ev eggrun.Event)
}

// NopSink discards every event.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(eggrun.Event) {}
