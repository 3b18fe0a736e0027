package generation

import "math/rand"

// Source is the random stream the generator draws from. Everything the
// pipeline randomizes goes through this one interface so tests can swap in
// a fixed-seed stream and get bit-identical maps.
type Source interface {
	// Intn returns a uniform int in [0, n)
	Intn(n int) int
	// Range returns a uniform int in [min, max] inclusive
	Range(min, max int) int
	// Float64 returns a uniform float in [0.0, 1.0)
	Float64() float64
	// Chance reports true with probability p
	Chance(p float64) bool
}

type randSource struct {
	rng *rand.Rand
}

// NewSource creates a Source backed by math/rand with the given seed
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

func (s *randSource) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

func (s *randSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *randSource) Chance(p float64) bool {
	return s.rng.Float64() < p
}
