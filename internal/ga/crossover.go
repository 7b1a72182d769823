package ga

import (
	"math/rand"

	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
	"morningrun-router/internal/routemetrics"
)

// crossover builds a child from two parents using the order-preserving,
// vehicle-bucket scheme in spec.md §4.E: vehicles [0,k) are seeded from
// parent1, vehicles [k,n) from parent2, and anything left over is placed
// greedily by minimum additional distance. The child is returned unscored;
// callers score it once, after any mutation, matching the single rescore
// spec.md §4.E and §4.F call for.
func crossover(rng *rand.Rand, parent1, parent2 *model.Solution, vehicles []model.Vehicle, destination geo.Point) *model.Solution {
	child := model.NewBlankSolution(vehicles)
	n := len(vehicles)
	if n == 0 {
		return child
	}

	k := 1
	if n > 1 {
		k = 1 + rng.Intn(n-1)
	}

	assignedInChild := make(map[int64]bool)

	copyBucket := func(from *model.Solution, lo, hi int) {
		for i := lo; i < hi && i < len(from.Assignments); i++ {
			for _, p := range from.Assignments[i].Passengers {
				if assignedInChild[p.ID] {
					continue
				}
				if len(child.Assignments[i].Passengers) >= child.Assignments[i].Vehicle.Capacity {
					continue
				}
				child.Assignments[i].Passengers = append(child.Assignments[i].Passengers, p)
				assignedInChild[p.ID] = true
			}
		}
	}

	copyBucket(parent1, 0, k)
	copyBucket(parent2, k, n)

	leftover := unassignedFrom(parent1, assignedInChild)

	for _, p := range leftover {
		placeByMinAdditionalDistance(child, p, destination)
		assignedInChild[p.ID] = true
	}

	return child
}

// unassignedFrom returns every passenger referenced anywhere in sol (either
// parent carries the full passenger set in this design) that is not yet in
// assigned, in sol's own vehicle order, so the fallback placement below is
// deterministic given a fixed rng sequence upstream.
func unassignedFrom(sol *model.Solution, assigned map[int64]bool) []model.Passenger {
	var leftover []model.Passenger
	seen := make(map[int64]bool)
	for _, a := range sol.Assignments {
		for _, p := range a.Passengers {
			if assigned[p.ID] || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			leftover = append(leftover, p)
		}
	}
	return leftover
}

// placeByMinAdditionalDistance places p into whichever vehicle with spare
// capacity minimizes additional route distance; if none has spare
// capacity, it places p into the vehicle minimizing additional distance
// overall (allowing overload), breaking ties by lowest current occupancy
// (spec.md §4.E).
func placeByMinAdditionalDistance(sol *model.Solution, p model.Passenger, destination geo.Point) {
	bestIdx := -1
	bestAdditional := 0.0
	for i, a := range sol.Assignments {
		if len(a.Passengers) >= a.Vehicle.Capacity {
			continue
		}
		additional := routemetrics.AdditionalDistance(a.Vehicle.Coords(), a.Passengers, p, destination)
		if bestIdx == -1 || additional < bestAdditional {
			bestIdx = i
			bestAdditional = additional
		}
	}

	if bestIdx == -1 {
		bestIdx = 0
		bestAdditional = routemetrics.AdditionalDistance(sol.Assignments[0].Vehicle.Coords(), sol.Assignments[0].Passengers, p, destination)
		bestLoad := len(sol.Assignments[0].Passengers)
		for i := 1; i < len(sol.Assignments); i++ {
			a := sol.Assignments[i]
			additional := routemetrics.AdditionalDistance(a.Vehicle.Coords(), a.Passengers, p, destination)
			load := len(a.Passengers)
			if additional < bestAdditional || (additional == bestAdditional && load < bestLoad) {
				bestIdx = i
				bestAdditional = additional
				bestLoad = load
			}
		}
	}

	sol.Assignments[bestIdx].Passengers = append(sol.Assignments[bestIdx].Passengers, p)
}
