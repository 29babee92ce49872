// Package maze - RNG plumbing for the generator.
//
// This file centralizes random-source resolution so no time-based or global
// source is hidden inside the carving loop itself.
//
// Goals:
//   - Determinism: same seed ⇒ identical maze across platforms.
//   - Encapsulation: a single factory; the carver only ever sees a *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Generate call resolves its
//     own source; do not share an injected *rand.Rand across goroutines.
package maze

import "math/rand"

// resolveRNG returns the random source for one generation run.
// Policy: an injected Rand wins; otherwise a non-zero Seed yields a
// deterministic stream; otherwise a fresh stream is derived from the global
// source, so back-to-back unseeded calls produce different mazes.
//
// Complexity: O(1).
func resolveRNG(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	if o.Seed != 0 {
		return rand.New(rand.NewSource(o.Seed))
	}

	return rand.New(rand.NewSource(rand.Int63()))
}
