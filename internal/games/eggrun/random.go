package eggrun

import "math/rand"

// Random is the source of randomness for level generation and meme endings.
// Both draws are half-open: Float returns a value in [lo, hi) and Int an
// integer in [lo, hi). Callers guarantee lo < hi for Int.
type Random interface {
	Float(lo, hi float64) float64
	Int(lo, hi int) int
}

// MathRand adapts math/rand to Random.
type MathRand struct {
	rng *rand.Rand
}

// NewRand creates a seeded Random. The same seed always produces the same level.
func NewRand(seed int64) *MathRand {
	return &MathRand{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform value in [lo, hi).
func (m *MathRand) Float(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}

// Int returns a uniform integer in [lo, hi).
func (m *MathRand) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Intn(hi-lo)
}

// Draw records one call made against a SequenceRandom.
type Draw struct {
	Float  bool
	Lo, Hi float64
}

// SequenceRandom replays scripted values and records every draw.
// Floats and ints come from separate queues; an exhausted queue returns lo.
// It exists so tests can pin a layout and assert the draw order.
type SequenceRandom struct {
	Floats []float64
	Ints   []int
	Draws  []Draw
}

// Float returns the next scripted float.
func (s *SequenceRandom) Float(lo, hi float64) float64 {
	s.Draws = append(s.Draws, Draw{Float: true, Lo: lo, Hi: hi})
	if len(s.Floats) == 0 {
		return lo
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Int returns the next scripted int.
func (s *SequenceRandom) Int(lo, hi int) int {
	s.Draws = append(s.Draws, Draw{Lo: float64(lo), Hi: float64(hi)})
	if len(s.Ints) == 0 {
		return lo
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v
}
