package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const fileName = "eggrun.yaml"

// LoadEggRun loads the simulation configuration.
// Search order: customPath -> ~/.eggrun/configs/eggrun.yaml -> ./configs/eggrun.yaml -> embedded default.
// Files are decoded on top of the defaults, so they only need the keys they change.
func LoadEggRun(customPath string) (EggRunConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return candidate, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return candidate, nil
	}

	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hard-coded
// defaults if the embed is unusable.
func embeddedDefault() EggRunConfig {
	cfg := DefaultEggRunConfig()
	if err := yaml.Unmarshal(defaultEggRunYAML, &cfg); err != nil {
		return DefaultEggRunConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eggrun", "configs", filename)
}

// Validate checks that sizes are positive, ranges are ordered and
// probabilities are usable. It reports every problem found.
func (c EggRunConfig) Validate() error {
	var errs []error

	sizes := map[string]Size{
		"player":     c.Sizes.Player,
		"platform":   c.Sizes.Platform,
		"bar":        c.Sizes.Bar,
		"chicken":    c.Sizes.Chicken,
		"egg":        c.Sizes.Egg,
		"spike":      c.Sizes.Spike,
		"house":      c.Sizes.House,
		"cloud":      c.Sizes.Cloud,
		"background": c.Sizes.Background,
	}
	for _, name := range sortedKeys(sizes) {
		s := sizes[name]
		if s.W <= 0 || s.H <= 0 {
			errs = append(errs, fmt.Errorf("sizes.%s: must be positive, got %gx%g", name, s.W, s.H))
		}
		if 2*c.Physics.CollisionMargin >= s.W || 2*c.Physics.CollisionMargin >= s.H {
			errs = append(errs, fmt.Errorf("sizes.%s: collision margin %g leaves no area", name, c.Physics.CollisionMargin))
		}
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"level.clouds.y", c.Level.Clouds.Y},
		{"level.clouds.speed", c.Level.Clouds.Speed},
		{"level.floating.jitter", c.Level.Floating.Jitter},
		{"level.floating.y", c.Level.Floating.Y},
		{"level.chickens.x", c.Level.Chickens.X},
		{"level.chickens.y", c.Level.Chickens.Y},
		{"level.chickens.speed_x", c.Level.Chickens.SpeedX},
		{"level.chickens.speed_y", c.Level.Chickens.SpeedY},
	}
	for _, r := range ranges {
		if r.r.Max < r.r.Min {
			errs = append(errs, fmt.Errorf("%s: max %g is below min %g", r.name, r.r.Max, r.r.Min))
		}
	}

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity: must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.CollisionMargin < 0 {
		errs = append(errs, fmt.Errorf("physics.collision_margin: must not be negative, got %g", c.Physics.CollisionMargin))
	}
	if c.Level.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("level.screen_height: must be positive, got %g", c.Level.ScreenHeight))
	}
	if c.Level.Ground.Step <= 0 {
		errs = append(errs, fmt.Errorf("level.ground.step: must be positive, got %d", c.Level.Ground.Step))
	}
	if p := c.Level.Eggs.ChancePercent; p < 0 || p > 100 {
		errs = append(errs, fmt.Errorf("level.eggs.chance_percent: must be in [0, 100], got %d", p))
	}
	if c.Level.Spikes.OneIn <= 0 {
		errs = append(errs, fmt.Errorf("level.spikes.one_in: must be positive, got %d", c.Level.Spikes.OneIn))
	}
	counts := map[string]int{
		"level.background.count": c.Level.Background.Count,
		"level.clouds.count":     c.Level.Clouds.Count,
		"level.floating.count":   c.Level.Floating.Count,
		"level.chickens.count":   c.Level.Chickens.Count,
	}
	for _, name := range sortedKeys(counts) {
		if counts[name] < 0 {
			errs = append(errs, fmt.Errorf("%s: must not be negative, got %d", name, counts[name]))
		}
	}

	return errors.Join(errs...)
}

// sortedKeys returns map keys in a stable order so validation errors are
// reported deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
