// Package mvc - RNG policy for the tabu metaheuristic.
//
// Determinism rules:
//   - Same seed ⇒ identical run, across platforms.
//   - seed==0 ⇒ a fixed default stream, so the zero Options value is
//     reproducible rather than time-dependent.
//   - math/rand.Rand is not goroutine-safe; each Solve call builds its own.
package mvc

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand under the seed==0 policy.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
