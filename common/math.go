package common

import (
	"math"
	"math/rand/v2"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// NormalizeOrZero returns the unit vector of (x, y), or the zero vector when
// the length is zero.
func NormalizeOrZero(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// ClampLength shortens (x, y) to at most max.
func ClampLength(x, y, max float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= max || l == 0 {
		return x, y
	}
	return x / l * max, y / l * max
}

// RandomUnitVector returns a uniformly distributed direction.
func RandomUnitVector(rng *rand.Rand) (float64, float64) {
	a := rng.Float64() * 2 * math.Pi
	return math.Cos(a), math.Sin(a)
}

// RandomRange returns a value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandomAround returns a point at a random distance in [min, max) from (x, y)
// in a random direction.
func RandomAround(rng *rand.Rand, x, y, min, max float64) (float64, float64) {
	dx, dy := RandomUnitVector(rng)
	r := RandomRange(rng, min, max)
	return x + dx*r, y + dy*r
}

// ChanceOneIn reports true with probability 1/n. n <= 1 always succeeds.
func ChanceOneIn(rng *rand.Rand, n int) bool {
	if n <= 1 {
		return true
	}
	return rng.IntN(n) == 0
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
