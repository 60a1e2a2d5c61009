// Package som - RNG utilities shared by training and by samplers built on a Map.
//
// Goals:
//   - Determinism: same seed ⇒ identical grids and draws.
//   - Ownership: every Map holds its own *rand.Rand; there is no package-level
//     generator, so maps living in the same process never perturb each other.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Map (or a generator
//     injected with WithRand) across goroutines.
package som

import (
	"math/rand"
	"time"
)

// NewRand returns the generator a Map built with opts would own:
// opts.Rand if set, a generator seeded with opts.Seed if Seeded, otherwise a
// generator seeded from the wall clock.
//
// Complexity: O(1).
func NewRand(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}
	if opts.Seeded {
		return rngFromSeed(opts.Seed)
	}
	return rngFromSeed(time.Now().UnixNano())
}

// rngFromSeed returns a deterministic *rand.Rand for seed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// permInto overwrites p with a uniformly random permutation of 0..len(p)-1
// using an in-place Fisher–Yates shuffle driven by rng.
//
// Complexity: O(n) time, O(1) extra space.
func permInto(p []int, rng *rand.Rand) {
	var i, j int
	for i = range p {
		p[i] = i
	}
	for i = len(p) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}
