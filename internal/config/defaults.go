package config

import (
	_ "embed"
)

//go:embed defaults/eggrun.yaml
var defaultEggRunYAML []byte

// DefaultEggRunConfig returns the built-in configuration. It mirrors the
// embedded defaults/eggrun.yaml and is used when that file cannot be decoded.
func DefaultEggRunConfig() EggRunConfig {
	return EggRunConfig{
		Physics: Physics{
			Gravity:         1000,
			GroundBuffer:    5,
			CollisionMargin: 2,
			FallMargin:      100,
		},
		Player: PlayerSetup{
			StartX:    243,
			StartY:    350,
			MoveSpeed: 300,
			JumpSpeed: 500,
		},
		Sizes: Sizes{
			Player:     Size{W: 30, H: 48},
			Platform:   Size{W: 429, H: 141},
			Bar:        Size{W: 214.5, H: 70.5},
			Chicken:    Size{W: 52, H: 48},
			Egg:        Size{W: 40, H: 40},
			Spike:      Size{W: 60, H: 52},
			House:      Size{W: 423, H: 624},
			Cloud:      Size{W: 786, H: 150},
			Background: Size{W: 1024, H: 2304},
		},
		Level: LevelGen{
			ScreenHeight: 768,
			Background: BackgroundGen{
				Count:   61,
				StartX:  -1024,
				CenterY: 336,
			},
			Clouds: CloudGen{
				Count:   41,
				StartX:  -1024,
				Spacing: 500,
				Y:       Range{Min: 100, Max: 500},
				Speed:   Range{Min: 20, Max: 60},
			},
			Ground: GroundGen{
				FromX: -429,
				ToX:   2000,
				Step:  400,
			},
			Floating: FloatingGen{
				Count:   60,
				Spacing: 50,
				Jitter:  Range{Min: -200, Max: 200},
				Y:       Range{Min: 150, Max: 650},
			},
			Eggs: EggGen{
				ChancePercent: 30,
				Overlap:       5,
			},
			Chickens: ChickenGen{
				Count:  20,
				X:      Range{Min: 500, Max: 4000},
				Y:      Range{Min: 100, Max: 600},
				SpeedX: Range{Min: 50, Max: 150},
				SpeedY: Range{Min: 30, Max: 80},
			},
			Spikes: SpikeGen{
				OneIn:   5,
				Overlap: 5,
			},
			House: HousePlacement{
				CenterX: 3000,
				CenterY: 292,
			},
		},
		Bounds: Bounds{
			Chicken:     RectBounds{MinX: 0, MaxX: 5000, MinY: 0, MaxY: 800},
			CloudWrapX:  60000,
			CloudResetX: -1024,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEggRunYAML
}
