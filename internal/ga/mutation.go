package ga

import (
	"math/rand"

	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
	"morningrun-router/internal/routemetrics"
)

// mutate applies exactly one of the four operators in spec.md §4.E, chosen
// uniformly at random, to sol in place. It is a no-op if the chosen
// operator has nothing to act on (e.g. swap with fewer than two occupied
// vehicles).
func mutate(rng *rand.Rand, sol *model.Solution, destination geo.Point) {
	switch rng.Intn(4) {
	case 0:
		mutateSwap(rng, sol)
	case 1:
		mutateReorder(rng, sol)
	case 2:
		mutateMove(rng, sol)
	case 3:
		mutate2Opt(rng, sol, destination)
	}
}

// mutateSwap picks two distinct occupied vehicles and swaps one randomly
// chosen passenger between them, same position index in each (spec.md
// §4.E). A straight swap never changes either vehicle's occupancy count.
func mutateSwap(rng *rand.Rand, sol *model.Solution) {
	occupied := occupiedIndices(sol)
	if len(occupied) < 2 {
		return
	}

	perm := rng.Perm(len(occupied))
	a := sol.Assignments[occupied[perm[0]]].Passengers
	b := sol.Assignments[occupied[perm[1]]].Passengers

	ia := rng.Intn(len(a))
	ib := rng.Intn(len(b))

	a[ia], b[ib] = b[ib], a[ia]
}

// mutateReorder picks one vehicle with at least two passengers. With three
// or more stops it reverses a random subrange [i, j]; with exactly two it
// swaps them with probability 1/2 (spec.md §4.E's "segment reverse /
// 2-swap" — unconditional, unlike the dedicated 2-opt operator below,
// which only keeps a reversal that strictly improves distance).
func mutateReorder(rng *rand.Rand, sol *model.Solution) {
	candidates := indicesWithAtLeast(sol, 2)
	if len(candidates) == 0 {
		return
	}
	vi := candidates[rng.Intn(len(candidates))]
	stops := sol.Assignments[vi].Passengers
	n := len(stops)

	if n == 2 {
		if rng.Float64() < 0.5 {
			stops[0], stops[1] = stops[1], stops[0]
		}
		return
	}

	i := rng.Intn(n)
	j := rng.Intn(n)
	if i > j {
		i, j = j, i
	}
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		stops[lo], stops[hi] = stops[hi], stops[lo]
	}
}

// mutateMove relocates one randomly chosen passenger from its current
// vehicle to a different randomly chosen vehicle, with no capacity check
// (spec.md §4.E and §9: Move may overload its destination; the evaluator's
// overload penalty is what discourages it, and a later operator may repair
// it).
func mutateMove(rng *rand.Rand, sol *model.Solution) {
	occupied := occupiedIndices(sol)
	if len(occupied) == 0 || len(sol.Assignments) < 2 {
		return
	}

	fromIdx := occupied[rng.Intn(len(occupied))]
	from := sol.Assignments[fromIdx].Passengers
	pIdx := rng.Intn(len(from))
	p := from[pIdx]

	toIdx := fromIdx
	for toIdx == fromIdx {
		toIdx = rng.Intn(len(sol.Assignments))
	}

	sol.Assignments[fromIdx].Passengers = append(from[:pIdx], from[pIdx+1:]...)
	sol.Assignments[toIdx].Passengers = append(sol.Assignments[toIdx].Passengers, p)
}

// mutate2Opt picks one vehicle with at least four passengers, tries up to
// min(10, n*(n-1)/2) random (i, j) position pairs, reverses the subrange
// [i, j] for each candidate, and keeps the best-seen reversal — applying it
// only if it strictly shortens that vehicle's own route distance (spec.md
// §4.E's classic bounded 2-opt).
func mutate2Opt(rng *rand.Rand, sol *model.Solution, destination geo.Point) {
	candidates := indicesWithAtLeast(sol, 4)
	if len(candidates) == 0 {
		return
	}
	vi := candidates[rng.Intn(len(candidates))]
	a := &sol.Assignments[vi]
	n := len(a.Passengers)

	maxTrials := n * (n - 1) / 2
	if maxTrials > 10 {
		maxTrials = 10
	}

	current, _ := routemetrics.ComputeRoute(a.Vehicle.Coords(), a.Passengers, destination, 1)
	bestDistance := current
	var bestOrder []model.Passenger

	for t := 0; t < maxTrials; t++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}

		candidate := append([]model.Passenger(nil), a.Passengers...)
		for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
			candidate[lo], candidate[hi] = candidate[hi], candidate[lo]
		}

		d, _ := routemetrics.ComputeRoute(a.Vehicle.Coords(), candidate, destination, 1)
		if d < bestDistance {
			bestDistance = d
			bestOrder = candidate
		}
	}

	if bestOrder != nil {
		a.Passengers = bestOrder
	}
}

func occupiedIndices(sol *model.Solution) []int {
	return indicesWithAtLeast(sol, 1)
}

func indicesWithAtLeast(sol *model.Solution, n int) []int {
	var idx []int
	for i, a := range sol.Assignments {
		if len(a.Passengers) >= n {
			idx = append(idx, i)
		}
	}
	return idx
}
