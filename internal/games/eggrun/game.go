// Package eggrun implements the Egg Run simulation: a side-scrolling
// platformer where the player collects eggs, dodges chickens and spikes,
// and runs for the house.
//
// The package has no I/O. The platform feeds it input frames and elapsed
// time, reads the State to draw, and reacts to the returned events.
package eggrun

import (
	"github.com/vovakirdan/egg-run/internal/config"
	"github.com/vovakirdan/egg-run/internal/core"
)

// Game owns the current State and the random source used for the run.
type Game struct {
	cfg   config.EggRunConfig
	rng   Random
	state State
	tick  uint64
}

// New creates a game on the title screen. rng is used for every level
// generated by this game and for the meme ending draw.
func New(cfg config.EggRunConfig, rng Random) *Game {
	return &Game{
		cfg:   cfg,
		rng:   rng,
		state: StartState{},
	}
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// World returns the active world, or nil outside a run.
func (g *Game) World() *World {
	if gs, ok := g.state.(GameState); ok {
		return gs.World
	}
	return nil
}

// Config returns the constants the game was created with.
func (g *Game) Config() config.EggRunConfig {
	return g.cfg
}

// Tick returns the number of Update calls made during runs.
func (g *Game) Tick() uint64 {
	return g.tick
}

// newRun discards any previous world and generates a fresh one.
func (g *Game) newRun() {
	g.state = GameState{World: Generate(g.cfg, g.cfg.Level.ScreenHeight, g.rng)}
}

// ProcessInput applies one frame of input.
//
// On the title screen only Start does anything; after a run ends only
// Restart does. During a run, Left/Right set the horizontal velocity and Up
// jumps when the player has no vertical velocity.
func (g *Game) ProcessInput(frame core.InputFrame) []Event {
	intent := MapIntent(frame)

	switch s := g.state.(type) {
	case StartState:
		if intent.Start {
			g.newRun()
		}
		return nil

	case GameOverState:
		if intent.Restart {
			g.newRun()
		}
		return nil

	case GameState:
		return g.steer(s.World, intent)
	}

	return nil
}

// steer applies movement and jump intents to the player.
func (g *Game) steer(w *World, intent Intent) []Event {
	p := &w.Player
	speed := g.cfg.Player.MoveSpeed

	switch intent.Dir {
	case DirLeft:
		p.Velocity.X = -speed
		w.Facing = FacingLeft
	case DirRight:
		p.Velocity.X = speed
		w.Facing = FacingRight
	default:
		p.Velocity.X = 0
	}

	if intent.Jump && p.Velocity.Y == 0 {
		p.Velocity.Y = -g.cfg.Player.JumpSpeed
		return []Event{JumpedEvent{}}
	}
	return nil
}

// Update advances the simulation by dt seconds. Outside a run it does
// nothing. It returns the events produced this frame in order.
func (g *Game) Update(dt float64) []Event {
	gs, ok := g.state.(GameState)
	if !ok {
		return nil
	}
	g.tick++

	w := gs.World
	g.movePlayer(w, dt)
	g.moveChickens(w, dt)
	g.moveClouds(w, dt)

	return g.resolve(w)
}

// Camera returns the world x shown at the left edge of a view screenW world
// units wide. The view follows the player but never scrolls left of 0.
func (g *Game) Camera(screenW float64) float64 {
	w := g.World()
	if w == nil {
		return 0
	}
	return max(w.Player.Rect.Center().X-screenW/2, 0)
}

// end moves the game to GameOver and reports it.
func (g *Game) end(reason Reason, events []Event) []Event {
	g.state = GameOverState{Reason: reason}
	return append(events, GameOverEvent{Reason: reason})
}
