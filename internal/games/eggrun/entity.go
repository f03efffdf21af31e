package eggrun

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/egg-run/internal/core"
)

// Entity is a static axis-aligned object in the world.
type Entity struct {
	Rect core.Rect
}

// CollisionRect returns the bounds used for overlap tests: the entity's
// rectangle shrunk by margin on every side. It is never used for drawing.
func (e Entity) CollisionRect(margin float64) core.Rect {
	return e.Rect.Inset(margin)
}

// MovingEntity is an Entity with a velocity in units per second.
type MovingEntity struct {
	Entity
	Velocity core.Vec
}

// ApplyVelocity advances the entity by velocity * dt.
func (m *MovingEntity) ApplyVelocity(dt float64) {
	m.Rect = m.Rect.Translate(r2.Scale(dt, m.Velocity))
}

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// World is the mutable payload of an active run. Only one World is alive at
// a time; it is discarded when the run ends.
type World struct {
	Player MovingEntity
	Facing Facing
	Score  int

	Clouds     []MovingEntity
	Platforms  []Entity // Ground platforms first, then floating bars
	Ground     int      // Number of ground platforms at the head of Platforms
	Eggs       []Entity
	Chickens   []MovingEntity
	Spikes     []Entity
	House      Entity
	Background []Entity
}
