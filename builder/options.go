package builder

import "math/rand"

// defaultSeed is substituted when no RNG and no seed are supplied, keeping
// the zero-option call reproducible rather than time-dependent.
const defaultSeed int64 = 1

// config carries resolved generator options.
type config struct {
	rng *rand.Rand
}

// Option adjusts generator behavior.
type Option func(*config)

// WithSeed derives a deterministic RNG from seed (seed==0 ⇒ default stream).
func WithSeed(seed int64) Option {
	return func(c *config) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand supplies an explicit RNG; the caller keeps ownership. A nil rng
// is ignored, falling back to the default stream.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// resolve folds the options over the default configuration.
func resolve(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}
