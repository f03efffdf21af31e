package eggrun

import (
	"testing"

	"github.com/vovakirdan/egg-run/internal/config"
)

const screenH = 768

func TestGenerateCounts(t *testing.T) {
	cfg := config.DefaultEggRunConfig()

	for _, seed := range []int64{1, 42, 12345} {
		w := Generate(cfg, screenH, NewRand(seed))

		if len(w.Platforms) != 67 {
			t.Errorf("seed %d: got %d platforms, expected 67", seed, len(w.Platforms))
		}
		if w.Ground != 7 {
			t.Errorf("seed %d: got %d ground platforms, expected 7", seed, w.Ground)
		}
		if len(w.Background) != 61 {
			t.Errorf("seed %d: got %d background tiles, expected 61", seed, len(w.Background))
		}
		if len(w.Clouds) != 41 {
			t.Errorf("seed %d: got %d clouds, expected 41", seed, len(w.Clouds))
		}
		if len(w.Chickens) != 20 {
			t.Errorf("seed %d: got %d chickens, expected 20", seed, len(w.Chickens))
		}
		if len(w.Eggs) > len(w.Platforms) {
			t.Errorf("seed %d: %d eggs exceed %d platforms", seed, len(w.Eggs), len(w.Platforms))
		}
		if len(w.Spikes) > w.Ground {
			t.Errorf("seed %d: %d spikes exceed %d ground platforms", seed, len(w.Spikes), w.Ground)
		}
		if w.Score != 0 {
			t.Errorf("seed %d: new world has score %d", seed, w.Score)
		}
	}
}

func TestGenerateGroundPlatforms(t *testing.T) {
	cfg := config.DefaultEggRunConfig()
	w := Generate(cfg, screenH, NewRand(7))

	centres := []float64{-429, -29, 371, 771, 1171, 1571, 1971}
	for i, cx := range centres {
		p := w.Platforms[i].Rect
		if p.Center().X != cx {
			t.Errorf("ground %d: centre x = %v, expected %v", i, p.Center().X, cx)
		}
		if p.Y != screenH-141 {
			t.Errorf("ground %d: y = %v, expected %v", i, p.Y, screenH-141)
		}
	}
}

func TestGenerateDrawOrder(t *testing.T) {
	cfg := config.DefaultEggRunConfig()
	rng := &SequenceRandom{}
	Generate(cfg, screenH, rng)

	// Every Int draw returns lo, so every platform gets an egg, every
	// chicken flies positive, and every eligible platform gets a spike.
	// Floating bars sit at y = 150 and are never eligible.
	expected := 41*2 + 60*2 + 67 + 20*6 + 7
	if len(rng.Draws) != expected {
		t.Fatalf("got %d draws, expected %d", len(rng.Draws), expected)
	}

	checks := []struct {
		index int
		want  Draw
	}{
		{0, Draw{Float: true, Lo: 100, Hi: 500}},
		{1, Draw{Float: true, Lo: 20, Hi: 60}},
		{82, Draw{Float: true, Lo: -200, Hi: 200}},
		{83, Draw{Float: true, Lo: 150, Hi: 650}},
		{202, Draw{Lo: 0, Hi: 100}},
		{268, Draw{Lo: 0, Hi: 100}},
		{269, Draw{Float: true, Lo: 500, Hi: 4000}},
		{270, Draw{Float: true, Lo: 100, Hi: 600}},
		{271, Draw{Float: true, Lo: 50, Hi: 150}},
		{272, Draw{Lo: 0, Hi: 2}},
		{273, Draw{Float: true, Lo: 30, Hi: 80}},
		{274, Draw{Lo: 0, Hi: 2}},
		{389, Draw{Lo: 0, Hi: 5}},
		{395, Draw{Lo: 0, Hi: 5}},
	}
	for _, tc := range checks {
		if got := rng.Draws[tc.index]; got != tc.want {
			t.Errorf("draw %d = %+v, expected %+v", tc.index, got, tc.want)
		}
	}
}

func TestGenerateEggPlacement(t *testing.T) {
	cfg := config.DefaultEggRunConfig()
	w := Generate(cfg, screenH, &SequenceRandom{})

	if len(w.Eggs) != len(w.Platforms) {
		t.Fatalf("got %d eggs, expected one per platform (%d)", len(w.Eggs), len(w.Platforms))
	}

	for k, egg := range w.Eggs {
		p := w.Platforms[k].Rect
		wantY := p.Y - 40 + 5
		if egg.Rect.Y != wantY {
			t.Errorf("egg %d: y = %v, expected %v", k, egg.Rect.Y, wantY)
		}
		wantX := p.Center().X + (float64(k)-0.5)*p.W*0.5
		if got := egg.Rect.Center().X; got != wantX {
			t.Errorf("egg %d: centre x = %v, expected %v", k, got, wantX)
		}
	}
}

func TestGenerateEggSelection(t *testing.T) {
	cfg := config.DefaultEggRunConfig()

	// Select only the second and fourth ground platforms.
	ints := make([]int, 67)
	for i := range ints {
		ints[i] = 99
	}
	ints[1] = 29
	ints[3] = 0
	w := Generate(cfg, screenH, &SequenceRandom{Ints: ints})

	if len(w.Eggs) != 2 {
		t.Fatalf("got %d eggs, expected 2", len(w.Eggs))
	}

	first := w.Platforms[1].Rect
	if got, want := w.Eggs[0].Rect.Center().X, first.Center().X-0.5*first.W*0.5; got != want {
		t.Errorf("first egg centre x = %v, expected %v", got, want)
	}
	second := w.Platforms[3].Rect
	if got, want := w.Eggs[1].Rect.Center().X, second.Center().X+0.5*second.W*0.5; got != want {
		t.Errorf("second egg centre x = %v, expected %v", got, want)
	}
}

func TestGenerateSpikePlacement(t *testing.T) {
	cfg := config.DefaultEggRunConfig()
	w := Generate(cfg, screenH, &SequenceRandom{})

	if len(w.Spikes) != 7 {
		t.Fatalf("got %d spikes, expected 7", len(w.Spikes))
	}
	for i, s := range w.Spikes {
		p := w.Platforms[i].Rect
		if got := s.Rect.Center().X; got != p.Right() {
			t.Errorf("spike %d: centre x = %v, expected platform right edge %v", i, got, p.Right())
		}
		if want := p.Y - 52 + 5; s.Rect.Y != want {
			t.Errorf("spike %d: y = %v, expected %v", i, s.Rect.Y, want)
		}
	}
}

func TestGenerateChickenSigns(t *testing.T) {
	cfg := config.DefaultEggRunConfig()

	// 67 egg draws come first, then two sign draws per chicken.
	ints := make([]int, 67, 67+40)
	for i := range ints {
		ints[i] = 99
	}
	ints = append(ints, 1, 0) // first chicken: left, down
	w := Generate(cfg, screenH, &SequenceRandom{Ints: ints})

	c := w.Chickens[0]
	if c.Velocity.X != -50 || c.Velocity.Y != 30 {
		t.Errorf("first chicken velocity = %+v, expected (-50, 30)", c.Velocity)
	}
	if c2 := w.Chickens[1]; c2.Velocity.X != 50 || c2.Velocity.Y != 30 {
		t.Errorf("second chicken velocity = %+v, expected (50, 30)", c2.Velocity)
	}
}

func TestGenerateFixedEntities(t *testing.T) {
	cfg := config.DefaultEggRunConfig()
	w := Generate(cfg, screenH, NewRand(3))

	if c := w.House.Rect.Center(); c.X != 3000 || c.Y != 292 {
		t.Errorf("house centre = %+v, expected (3000, 292)", c)
	}
	if c := w.Player.Rect.Center(); c.X != 243 || c.Y != 350 {
		t.Errorf("player centre = %+v, expected (243, 350)", c)
	}
	if w.Player.Velocity.X != 0 || w.Player.Velocity.Y != 0 {
		t.Errorf("player should start at rest, got %+v", w.Player.Velocity)
	}
	if w.Facing != FacingRight {
		t.Errorf("player should start facing right")
	}
	for i, tile := range w.Background {
		want := -1024 + float64(i)*1024
		if got := tile.Rect.Center().X; got != want {
			t.Errorf("tile %d: centre x = %v, expected %v", i, got, want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultEggRunConfig()
	a := Generate(cfg, screenH, NewRand(99))
	b := Generate(cfg, screenH, NewRand(99))

	if len(a.Eggs) != len(b.Eggs) || len(a.Spikes) != len(b.Spikes) {
		t.Fatalf("same seed produced different entity counts")
	}
	for i := range a.Platforms {
		if a.Platforms[i] != b.Platforms[i] {
			t.Fatalf("platform %d differs: %+v vs %+v", i, a.Platforms[i], b.Platforms[i])
		}
	}
	for i := range a.Chickens {
		if a.Chickens[i] != b.Chickens[i] {
			t.Fatalf("chicken %d differs", i)
		}
	}
}
