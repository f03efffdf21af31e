package eggrun

import (
	"github.com/vovakirdan/egg-run/internal/config"
	"github.com/vovakirdan/egg-run/internal/core"
)

// Generate builds the world for a new run on a screen of height screenH.
//
// The layout depends only on cfg, screenH and the values drawn from rng, and
// the draws happen in a fixed order: clouds (y, speed per cloud), floating
// platforms (x jitter, y per bar), eggs (one per platform), chickens (x, y,
// speed x, sign x, speed y, sign y per chicken), spikes (one per platform
// resting on the floor). Background tiles, ground platforms, the house and
// the player draw nothing.
func Generate(cfg config.EggRunConfig, screenH float64, rng Random) *World {
	w := &World{
		Player: MovingEntity{
			Entity: Entity{Rect: core.RectCentered(
				cfg.Player.StartX, cfg.Player.StartY,
				cfg.Sizes.Player.W, cfg.Sizes.Player.H,
			)},
		},
		Facing: FacingRight,
	}

	w.Background = background(cfg)
	w.Clouds = clouds(cfg, rng)
	w.Platforms, w.Ground = platforms(cfg, screenH, rng)
	w.Eggs = eggs(cfg, w.Platforms, rng)
	w.Chickens = chickens(cfg, rng)
	w.Spikes = spikes(cfg, w.Platforms, screenH, rng)
	w.House = Entity{Rect: core.RectCentered(
		cfg.Level.House.CenterX, cfg.Level.House.CenterY,
		cfg.Sizes.House.W, cfg.Sizes.House.H,
	)}

	return w
}

// background lays decorative tiles edge to edge.
func background(cfg config.EggRunConfig) []Entity {
	gen := cfg.Level.Background
	size := cfg.Sizes.Background

	tiles := make([]Entity, 0, gen.Count)
	for i := 0; i < gen.Count; i++ {
		cx := gen.StartX + float64(i)*size.W
		tiles = append(tiles, Entity{Rect: core.RectCentered(cx, gen.CenterY, size.W, size.H)})
	}
	return tiles
}

func clouds(cfg config.EggRunConfig, rng Random) []MovingEntity {
	gen := cfg.Level.Clouds
	size := cfg.Sizes.Cloud

	out := make([]MovingEntity, 0, gen.Count)
	for i := 0; i < gen.Count; i++ {
		cx := gen.StartX + gen.Spacing*float64(i)
		cy := rng.Float(gen.Y.Min, gen.Y.Max)
		speed := rng.Float(gen.Speed.Min, gen.Speed.Max)
		out = append(out, MovingEntity{
			Entity:   Entity{Rect: core.RectCentered(cx, cy, size.W, size.H)},
			Velocity: core.V(speed, 0),
		})
	}
	return out
}

// platforms returns ground platforms followed by floating bars, and the
// number of ground platforms.
func platforms(cfg config.EggRunConfig, screenH float64, rng Random) ([]Entity, int) {
	ground := cfg.Level.Ground
	floating := cfg.Level.Floating
	pSize := cfg.Sizes.Platform
	bSize := cfg.Sizes.Bar

	var out []Entity
	for x := ground.FromX; x <= ground.ToX; x += ground.Step {
		out = append(out, Entity{Rect: core.NewRect(
			float64(x)-pSize.W/2, screenH-pSize.H, pSize.W, pSize.H,
		)})
	}
	groundCount := len(out)

	for i := 0; i < floating.Count; i++ {
		cx := float64(i)*floating.Spacing + rng.Float(floating.Jitter.Min, floating.Jitter.Max)
		cy := rng.Float(floating.Y.Min, floating.Y.Max)
		out = append(out, Entity{Rect: core.RectCentered(cx, cy, bSize.W, bSize.H)})
	}

	return out, groundCount
}

// eggs selects platforms independently and spreads the eggs by their
// selection order, so the k-th egg sits (k - 0.5) half-widths from the centre
// of its platform.
func eggs(cfg config.EggRunConfig, plats []Entity, rng Random) []Entity {
	gen := cfg.Level.Eggs
	size := cfg.Sizes.Egg

	var out []Entity
	for _, p := range plats {
		if rng.Int(0, 100) >= gen.ChancePercent {
			continue
		}
		k := float64(len(out))
		offset := (k - 0.5) * (p.Rect.W * 0.5)
		cx := p.Rect.Center().X + offset
		y := p.Rect.Y - size.H + gen.Overlap
		out = append(out, Entity{Rect: core.NewRect(cx-size.W/2, y, size.W, size.H)})
	}
	return out
}

func chickens(cfg config.EggRunConfig, rng Random) []MovingEntity {
	gen := cfg.Level.Chickens
	size := cfg.Sizes.Chicken

	out := make([]MovingEntity, 0, gen.Count)
	for i := 0; i < gen.Count; i++ {
		cx := rng.Float(gen.X.Min, gen.X.Max)
		cy := rng.Float(gen.Y.Min, gen.Y.Max)
		vx := rng.Float(gen.SpeedX.Min, gen.SpeedX.Max) * sign(rng)
		vy := rng.Float(gen.SpeedY.Min, gen.SpeedY.Max) * sign(rng)
		out = append(out, MovingEntity{
			Entity:   Entity{Rect: core.RectCentered(cx, cy, size.W, size.H)},
			Velocity: core.V(vx, vy),
		})
	}
	return out
}

// sign draws +1 or -1 with equal probability.
func sign(rng Random) float64 {
	if rng.Int(0, 2) == 0 {
		return 1
	}
	return -1
}

// spikes places a spike on the right edge of some platforms resting on the
// floor. Only platforms whose centre lies below the ground line draw.
func spikes(cfg config.EggRunConfig, plats []Entity, screenH float64, rng Random) []Entity {
	gen := cfg.Level.Spikes
	size := cfg.Sizes.Spike
	groundLine := screenH - cfg.Sizes.Platform.H

	var out []Entity
	for _, p := range plats {
		if p.Rect.Center().Y <= groundLine {
			continue
		}
		if rng.Int(0, gen.OneIn) != 0 {
			continue
		}
		y := p.Rect.Y - size.H + gen.Overlap
		out = append(out, Entity{Rect: core.NewRect(p.Rect.Right()-size.W/2, y, size.W, size.H)})
	}
	return out
}
