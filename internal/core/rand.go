package core

import "math/rand"

// Rand is a seedable pseudo-random source. Each owner keeps its own
// instance so results depend only on the seed and the call sequence.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a generator from a 64-bit seed.
func NewRand(seed uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(int64(seed)))}
}

// IntRange returns an integer in [lo, hi). It returns lo when the range is empty.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}

// FloatRange returns a float in [lo, hi).
func (r *Rand) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// Bool returns a uniformly distributed boolean.
func (r *Rand) Bool() bool {
	return r.rng.Intn(2) == 1
}

// Uint64 returns a raw 64-bit value, used to derive child seeds.
func (r *Rand) Uint64() uint64 {
	return r.rng.Uint64()
}
