package ga

import (
	"math/rand"

	"morningrun-router/internal/model"
)

// tournamentSelect samples tournamentSize distinct indices uniformly from
// population (capped at the population's own size) and returns a clone of
// the highest-scoring contestant (spec.md §4.E).
func tournamentSelect(rng *rand.Rand, population []*model.Solution, tournamentSize int) *model.Solution {
	n := len(population)
	if tournamentSize > n {
		tournamentSize = n
	}

	indices := rng.Perm(n)[:tournamentSize]

	best := population[indices[0]]
	for _, idx := range indices[1:] {
		if population[idx].Score > best.Score {
			best = population[idx]
		}
	}
	return best.Clone()
}
