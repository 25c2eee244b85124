package builder

import "math/rand"

// BuilderOption customizes a Build call by mutating the builderConfig
// before the constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil means none was supplied.
	rng *rand.Rand
	// solvable clears a MinBreach route after construction.
	solvable bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible layouts.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSolvable guarantees a route from start to end by clearing the
// fewest walls that block it.
func WithSolvable() BuilderOption {
	return func(c *builderConfig) { c.solvable = true }
}
