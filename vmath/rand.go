package vmath

import "math"

// FastRand is a seeded xorshift64 generator. The simulation never reads
// wall-clock time or global randomness; every scatter decision flows
// through one of these so identical seeds replay identically.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// PointInCircle returns a uniformly distributed point within radius of
// (cx, cy). The sqrt on the radial draw corrects for area density so
// teleported entities spread instead of stacking near the center.
func (r *FastRand) PointInCircle(cx, cy, radius float64) (x, y float64) {
	angle := r.Float64() * 2 * math.Pi
	dist := math.Sqrt(r.Float64()) * radius
	return cx + math.Cos(angle)*dist, cy + math.Sin(angle)*dist
}
