package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultEggRunConfig(); got != want {
		t.Errorf("embedded defaults drifted from DefaultEggRunConfig:\n got  %+v\n want %+v", got, want)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultEggRunConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadEggRunFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadEggRun("")
	if err != nil {
		t.Fatalf("LoadEggRun() failed: %v", err)
	}
	if cfg != DefaultEggRunConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEggRunCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "physics:\n  gravity: 1500\nlevel:\n  floating:\n    count: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEggRun(path)
	if err != nil {
		t.Fatalf("LoadEggRun() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1500 {
		t.Errorf("gravity = %g, expected 1500", cfg.Physics.Gravity)
	}
	if cfg.Level.Floating.Count != 10 {
		t.Errorf("floating count = %d, expected 10", cfg.Level.Floating.Count)
	}
	// Untouched keys keep their defaults
	if cfg.Player.JumpSpeed != 500 {
		t.Errorf("jump speed = %g, expected default 500", cfg.Player.JumpSpeed)
	}
	if cfg.Level.Floating.Y != (Range{Min: 150, Max: 650}) {
		t.Errorf("floating y = %+v, expected default", cfg.Level.Floating.Y)
	}
}

func TestLoadEggRunCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadEggRun(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEggRun(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEggRun(invalid); err == nil || !strings.Contains(err.Error(), "physics.gravity") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadEggRunSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Local file only
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(work, "configs", "eggrun.yaml")
	if err := os.WriteFile(local, []byte("player:\n  move_speed: 111\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEggRun("")
	if err != nil {
		t.Fatalf("LoadEggRun() failed: %v", err)
	}
	if cfg.Player.MoveSpeed != 111 {
		t.Errorf("expected local config, move speed = %g", cfg.Player.MoveSpeed)
	}

	// User file takes precedence over local
	userDir := filepath.Join(home, ".eggrun", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "eggrun.yaml"), []byte("player:\n  move_speed: 222\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadEggRun("")
	if err != nil {
		t.Fatalf("LoadEggRun() failed: %v", err)
	}
	if cfg.Player.MoveSpeed != 222 {
		t.Errorf("expected user config, move speed = %g", cfg.Player.MoveSpeed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EggRunConfig)
		errSub string
	}{
		{"negative size", func(c *EggRunConfig) { c.Sizes.Egg.W = -1 }, "sizes.egg"},
		{"margin too large", func(c *EggRunConfig) { c.Physics.CollisionMargin = 30 }, "collision margin"},
		{"inverted range", func(c *EggRunConfig) { c.Level.Chickens.X = Range{Min: 10, Max: 5} }, "level.chickens.x"},
		{"zero step", func(c *EggRunConfig) { c.Level.Ground.Step = 0 }, "level.ground.step"},
		{"chance above 100", func(c *EggRunConfig) { c.Level.Eggs.ChancePercent = 101 }, "chance_percent"},
		{"zero spike odds", func(c *EggRunConfig) { c.Level.Spikes.OneIn = 0 }, "one_in"},
		{"negative count", func(c *EggRunConfig) { c.Level.Chickens.Count = -2 }, "level.chickens.count"},
		{"zero screen", func(c *EggRunConfig) { c.Level.ScreenHeight = 0 }, "screen_height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEggRunConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q should mention %q", err, tc.errSub)
			}
		})
	}
}

func TestDefaultYAML(t *testing.T) {
	if len(DefaultYAML()) == 0 {
		t.Error("embedded default YAML should not be empty")
	}
}
