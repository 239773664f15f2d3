package cubetimer

import "math/rand/v2"

// DefaultMaxAttempts bounds the draws spent on a single scramble position.
// At least 12 of the 18 candidates are always valid, so the limit is never
// reached with a working random source.
const DefaultMaxAttempts = 1000

// Option configures a Generator.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	maxAttempts int
	strictAxis  bool
}

func defaultConfig() *config {
	return &config{
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithRand makes the generator draw from r instead of the global source.
// A generator with its own source is not safe for concurrent use.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes the generator deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithMaxAttempts sets how many candidates may be drawn for one position
// before generation fails with ErrRetriesExhausted. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithStrictAxis additionally rejects a move on the same face as the move two
// back when the move in between turned the opposite face (U D U, R L' R2).
// Disabled by default.
func WithStrictAxis(enabled bool) Option {
	return func(c *config) {
		c.strictAxis = enabled
	}
}
