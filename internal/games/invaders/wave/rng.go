package wave

// Rand is the random source a wave draws enemy fire decisions from.
// *math/rand.Rand satisfies it, as does SimpleRNG.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
// The low bits of an LCG cycle with a short period, so only the high half is used.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
