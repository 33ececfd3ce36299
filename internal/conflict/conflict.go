// Package conflict deterministically samples representative hours in which
// gas dispatch is forbidden, weighted toward low-solar periods.
package conflict

import (
	"math/rand"

	"hybridretrofit/internal/solarprofile"
)

// Seed is the fixed RNG seed used for reproducible conflict-hour sampling.
const Seed = 42

// Generate selects a deterministic set of representative hours (0-287)
// where gas dispatch must be zero. The target count is round(288*pct).
// Hours with lower solar capacity factor are weighted more heavily. Returns
// an empty set when pct <= 0.
func Generate(pct float64, profile []float64) map[int]bool {
	nConflict := int(pct*float64(solarprofile.HoursPerRepr) + 0.5)
	if nConflict <= 0 {
		return map[int]bool{}
	}

	weights := make([]float64, len(profile))
	totalW := 0.0
	for t, cf := range profile {
		w := 1.0 - cf + 0.1
		weights[t] = w
		totalW += w
	}
	probs := make([]float64, len(weights))
	for t, w := range weights {
		probs[t] = w / totalW
	}

	rng := rand.New(rand.NewSource(Seed))
	conflictSet := make(map[int]bool, nConflict)

	for len(conflictSet) < nConflict {
		r := rng.Float64()
		cumulative := 0.0
		for t, p := range probs {
			cumulative += p
			if r <= cumulative {
				conflictSet[t] = true
				break
			}
		}
	}

	return conflictSet
}
