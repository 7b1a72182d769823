// Package seed produces the diverse initial population the GA driver
// starts from. Grounded on internal/routing/greedy.go's two-phase
// seed-then-cluster structure and internal/routing/fairness.go's
// initializeRoutes, re-targeted from "one route per driver" to "fill a
// population of Solutions."
package seed

import (
	"math/rand"
	"sort"

	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
	"morningrun-router/internal/routemetrics"
)

// GreedyByDistance sorts passengers farthest-from-destination first and
// places each into the nearest vehicle (by start-to-passenger distance)
// that still has spare capacity; if none has room, it goes to the
// least-loaded vehicle, which may overload it (spec.md §4.D.1).
func GreedyByDistance(problem model.ProblemInput) *model.Solution {
	destination := geo.Point{Lat: problem.Destination.Lat, Lng: problem.Destination.Lng}
	sol := model.NewBlankSolution(problem.Vehicles)

	ordered := append([]model.Passenger(nil), problem.Passengers...)
	sort.Slice(ordered, func(i, j int) bool {
		return geo.DistanceKm(ordered[i].Coords(), destination) > geo.DistanceKm(ordered[j].Coords(), destination)
	})

	for _, p := range ordered {
		placeInNearestOrLeastLoaded(sol, p)
	}

	return sol
}

// EvenDistribution gives each vehicle, in declaration order, its `target`
// nearest remaining passengers, where target is the minimum of the
// per-vehicle passenger share, the per-vehicle capacity share, and the
// smallest single vehicle's capacity (spec.md §4.D.2). Any passengers left
// over after every vehicle has claimed its share spill over the same way
// GreedyByDistance's fallback does.
func EvenDistribution(problem model.ProblemInput) *model.Solution {
	sol := model.NewBlankSolution(problem.Vehicles)
	if len(problem.Vehicles) == 0 {
		return sol
	}

	target := evenTarget(problem)

	remaining := append([]model.Passenger(nil), problem.Passengers...)

	for vi := range sol.Assignments {
		claimed := 0
		for claimed < target && len(remaining) > 0 {
			idx := nearestIndex(sol.Assignments[vi].Vehicle.Coords(), remaining)
			sol.Assignments[vi].Passengers = append(sol.Assignments[vi].Passengers, remaining[idx])
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			claimed++
		}
	}

	for _, p := range remaining {
		placeInNearestOrLeastLoaded(sol, p)
	}

	return sol
}

func evenTarget(problem model.ProblemInput) int {
	nVehicles := len(problem.Vehicles)
	if nVehicles == 0 {
		return 0
	}

	byCount := len(problem.Passengers) / nVehicles
	byCapacity := problem.TotalCapacity() / nVehicles

	minCapacity := problem.Vehicles[0].Capacity
	for _, v := range problem.Vehicles[1:] {
		if v.Capacity < minCapacity {
			minCapacity = v.Capacity
		}
	}

	target := byCount
	if byCapacity < target {
		target = byCapacity
	}
	if minCapacity < target {
		target = minCapacity
	}
	return target
}

// Randomized shuffles passengers, walks vehicles in order handing each a
// random count of the shuffled remainder (bounded by its spare capacity),
// and sends any leftovers to the vehicle currently carrying the fewest
// passengers, breaking ties by lowest additional distance (spec.md §4.D.3).
// rng is the GA driver's single shared random source — never a fresh one —
// so repeated runs with the same seed produce byte-identical solutions.
func Randomized(problem model.ProblemInput, rng *rand.Rand) *model.Solution {
	sol := model.NewBlankSolution(problem.Vehicles)

	shuffled := append([]model.Passenger(nil), problem.Passengers...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	idx := 0
	for vi := range sol.Assignments {
		remainingCount := len(shuffled) - idx
		if remainingCount <= 0 {
			break
		}
		spare := sol.Assignments[vi].Vehicle.Capacity - len(sol.Assignments[vi].Passengers)
		maxTake := spare
		if remainingCount < maxTake {
			maxTake = remainingCount
		}
		if maxTake < 0 {
			maxTake = 0
		}

		take := 0
		if maxTake > 0 {
			take = rng.Intn(maxTake + 1)
		}

		sol.Assignments[vi].Passengers = append(sol.Assignments[vi].Passengers, shuffled[idx:idx+take]...)
		idx += take
	}

	destination := geo.Point{Lat: problem.Destination.Lat, Lng: problem.Destination.Lng}
	for _, p := range shuffled[idx:] {
		placeInLeastLoadedByAdditionalDistance(sol, p, destination)
	}

	return sol
}

// placeInNearestOrLeastLoaded places p in the nearest vehicle (by
// start-to-passenger distance) with spare capacity, or failing that the
// least-loaded vehicle overall.
func placeInNearestOrLeastLoaded(sol *model.Solution, p model.Passenger) {
	bestIdx := -1
	bestDist := 0.0
	for i, a := range sol.Assignments {
		if len(a.Passengers) >= a.Vehicle.Capacity {
			continue
		}
		d := geo.DistanceKm(a.Vehicle.Coords(), p.Coords())
		if bestIdx == -1 || d < bestDist {
			bestIdx = i
			bestDist = d
		}
	}

	if bestIdx == -1 {
		bestIdx = leastLoadedIndex(sol)
	}
	if bestIdx == -1 {
		return
	}
	sol.Assignments[bestIdx].Passengers = append(sol.Assignments[bestIdx].Passengers, p)
}

// placeInLeastLoadedByAdditionalDistance places p in the vehicle currently
// carrying the fewest passengers, breaking ties by lowest additional
// distance (Randomized's leftover-placement rule).
func placeInLeastLoadedByAdditionalDistance(sol *model.Solution, p model.Passenger, destination geo.Point) {
	bestIdx := -1
	bestLoad := -1
	bestAdditional := 0.0

	for i, a := range sol.Assignments {
		load := len(a.Passengers)
		additional := routemetrics.AdditionalDistance(a.Vehicle.Coords(), a.Passengers, p, destination)

		better := bestIdx == -1 ||
			load < bestLoad ||
			(load == bestLoad && additional < bestAdditional)

		if better {
			bestIdx = i
			bestLoad = load
			bestAdditional = additional
		}
	}

	if bestIdx == -1 {
		return
	}
	sol.Assignments[bestIdx].Passengers = append(sol.Assignments[bestIdx].Passengers, p)
}

func leastLoadedIndex(sol *model.Solution) int {
	bestIdx := -1
	bestLoad := 0
	for i, a := range sol.Assignments {
		if bestIdx == -1 || len(a.Passengers) < bestLoad {
			bestIdx = i
			bestLoad = len(a.Passengers)
		}
	}
	return bestIdx
}

func nearestIndex(from geo.Point, passengers []model.Passenger) int {
	bestIdx := 0
	bestDist := geo.DistanceKm(from, passengers[0].Coords())
	for i := 1; i < len(passengers); i++ {
		d := geo.DistanceKm(from, passengers[i].Coords())
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return bestIdx
}

// Population fills out a full initial generation: GreedyByDistance and
// EvenDistribution are always added first, and the remainder is filled
// with independent Randomized seeds until size is reached (spec.md §4.D).
func Population(problem model.ProblemInput, size int, rng *rand.Rand) []*model.Solution {
	pop := make([]*model.Solution, 0, size)
	if size <= 0 {
		return pop
	}

	pop = append(pop, GreedyByDistance(problem))
	if len(pop) < size {
		pop = append(pop, EvenDistribution(problem))
	}
	for len(pop) < size {
		pop = append(pop, Randomized(problem, rng))
	}
	return pop
}
