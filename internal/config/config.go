// Package config provides YAML-based configuration for the Egg Run
// simulation: physics constants, entity sizes and level generation rules.
package config

// EggRunConfig contains all tunable constants of the simulation.
type EggRunConfig struct {
	Physics Physics     `yaml:"physics"`
	Player  PlayerSetup `yaml:"player"`
	Sizes   Sizes       `yaml:"sizes"`
	Level   LevelGen    `yaml:"level"`
	Bounds  Bounds      `yaml:"bounds"`
}

// Physics defines the integration and collision parameters.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Downward acceleration, units/s^2
	GroundBuffer    float64 `yaml:"ground_buffer"`    // Landing tolerance above a platform top
	CollisionMargin float64 `yaml:"collision_margin"` // Inset applied to every side for overlap tests
	FallMargin      float64 `yaml:"fall_margin"`      // Distance below the screen that counts as a fall
}

// PlayerSetup defines the player's start position and movement speeds.
type PlayerSetup struct {
	StartX    float64 `yaml:"start_x"` // Centre of the player at run start
	StartY    float64 `yaml:"start_y"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Sizes lists the dimensions of every entity kind.
type Sizes struct {
	Player     Size `yaml:"player"`
	Platform   Size `yaml:"platform"`
	Bar        Size `yaml:"bar"`
	Chicken    Size `yaml:"chicken"`
	Egg        Size `yaml:"egg"`
	Spike      Size `yaml:"spike"`
	House      Size `yaml:"house"`
	Cloud      Size `yaml:"cloud"`
	Background Size `yaml:"background"`
}

// Range is a half-open interval [Min, Max) for random draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LevelGen holds the procedural generation rules.
type LevelGen struct {
	ScreenHeight float64        `yaml:"screen_height"` // Logical screen height the level is built for
	Background   BackgroundGen  `yaml:"background"`
	Clouds       CloudGen       `yaml:"clouds"`
	Ground       GroundGen      `yaml:"ground"`
	Floating     FloatingGen    `yaml:"floating"`
	Eggs         EggGen         `yaml:"eggs"`
	Chickens     ChickenGen     `yaml:"chickens"`
	Spikes       SpikeGen       `yaml:"spikes"`
	House        HousePlacement `yaml:"house"`
}

// BackgroundGen places the decorative tiles.
type BackgroundGen struct {
	Count   int     `yaml:"count"`
	StartX  float64 `yaml:"start_x"`
	CenterY float64 `yaml:"center_y"`
}

// CloudGen places the drifting clouds.
type CloudGen struct {
	Count   int     `yaml:"count"`
	StartX  float64 `yaml:"start_x"`
	Spacing float64 `yaml:"spacing"`
	Y       Range   `yaml:"y"`
	Speed   Range   `yaml:"speed"`
}

// GroundGen places the floor platforms.
type GroundGen struct {
	FromX int `yaml:"from_x"` // Inclusive
	ToX   int `yaml:"to_x"`   // Inclusive
	Step  int `yaml:"step"`
}

// FloatingGen places the floating bars.
type FloatingGen struct {
	Count   int     `yaml:"count"`
	Spacing float64 `yaml:"spacing"`
	Jitter  Range   `yaml:"jitter"`
	Y       Range   `yaml:"y"`
}

// EggGen controls egg placement on platforms.
type EggGen struct {
	ChancePercent int     `yaml:"chance_percent"` // Out of 100
	Overlap       float64 `yaml:"overlap"`        // Sink into the platform top
}

// ChickenGen places the flying enemies.
type ChickenGen struct {
	Count  int   `yaml:"count"`
	X      Range `yaml:"x"`
	Y      Range `yaml:"y"`
	SpeedX Range `yaml:"speed_x"`
	SpeedY Range `yaml:"speed_y"`
}

// SpikeGen controls spike placement on ground platforms.
type SpikeGen struct {
	OneIn   int     `yaml:"one_in"` // A spike is placed when a draw in [0, OneIn) is 0
	Overlap float64 `yaml:"overlap"`
}

// HousePlacement fixes the goal structure's centre.
type HousePlacement struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
}

// Bounds defines the movement limits for chickens and clouds.
type Bounds struct {
	Chicken     RectBounds `yaml:"chicken"`
	CloudWrapX  float64    `yaml:"cloud_wrap_x"`  // Clouds past this x are wrapped
	CloudResetX float64    `yaml:"cloud_reset_x"` // ...back to this x
}

// RectBounds is an inclusive box; chickens reflect when they leave it.
type RectBounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}
