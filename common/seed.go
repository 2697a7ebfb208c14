package common

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences so the same parameters always synthesize
// the same waveform.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// Seed sets a new seed and resets the generator state.
func (r *SeededRNG) Seed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using the Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Float generates a random float32 in [0, max).
func (r *SeededRNG) Float(max float32) float32 {
	return float32(r.Random()) * max
}

// IntRange generates a random integer in the inclusive range [min, max].
func (r *SeededRNG) IntRange(min, max int) int {
	return min + int(r.Random()*float64(max-min+1))
}
