// Package maze defines tunable options and error definitions
// for maze generation.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrStartOutOfBounds is returned when the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("maze: start coordinate outside the grid")
)

// Option configures generation behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize maze generation.
type Options struct {
	// Seed drives the deterministic random source. Zero means "unseeded":
	// a fresh stream is drawn per call and generation is not reproducible.
	Seed int64

	// Rand, if non-nil, is used verbatim as the random source and takes
	// precedence over Seed. A *rand.Rand is not goroutine-safe; do not share
	// one across concurrent generations.
	Rand *rand.Rand
}

// DefaultOptions returns Options with an unseeded random source and no
// injected *rand.Rand.
func DefaultOptions() Options {
	return Options{
		Seed: 0,
		Rand: nil,
	}
}

// WithSeed makes generation deterministic: the same dimensions, start and
// seed always produce an identical grid. Seed 0 restores the default
// unseeded behavior.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a custom random source, overriding any seed.
// Passing nil has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
