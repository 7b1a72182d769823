// Package ga holds the steady-state genetic algorithm driver and the
// selection, crossover, and mutation operators it runs. Grounded on
// internal/routing/greedy.go's overall "build something reasonable, then
// refine" shape in the teacher repo, generalized from one-shot greedy
// construction into iterated search per spec.md §4.E and §4.F.
package ga

import (
	"log"
	"math/rand"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"morningrun-router/internal/evaluator"
	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
	"morningrun-router/internal/seed"
)

// GenerationStat records one generation's best and mean score, so a caller
// can inspect convergence after the fact without re-running the search
// (spec.md §4's supplemented History feature).
type GenerationStat struct {
	Generation int
	BestScore  float64
	MeanScore  float64
}

// Driver runs the GA loop described in spec.md §4.F. It owns the single
// *rand.Rand every operator draws from, so a fixed Seed deterministically
// reproduces a run end to end (grounded on jwmdev-brt08/backend/driver/batch.go's
// rand.New(rand.NewSource(baseSeed)) pattern rather than the teacher's own
// deprecated global rand.Seed call).
type Driver struct {
	Seed int64

	rng     *rand.Rand
	eval    *evaluator.Evaluator
	history []GenerationStat
}

// NewDriver returns a Driver seeded from seed.
func NewDriver(seedValue int64) *Driver {
	return &Driver{Seed: seedValue}
}

// History returns the best/mean score of every generation run so far.
func (d *Driver) History() []GenerationStat {
	return d.history
}

// Run executes the GA over problem and returns the best Solution found.
// Per spec.md §7.1, a degenerate problem (no passengers or no vehicles)
// short-circuits: it returns a blank solution without iterating.
func (d *Driver) Run(problem model.ProblemInput) *model.Solution {
	runID := uuid.New().String()[:8]

	if problem.Degenerate() {
		log.Printf("[GA] run=%s %s, returning blank solution", runID, model.ErrDegenerateInput)
		return model.NewBlankSolution(problem.Vehicles)
	}

	cfg := problem.Config.Normalize()
	d.rng = rand.New(rand.NewSource(d.Seed))
	d.history = nil

	destination := geo.Point{Lat: problem.Destination.Lat, Lng: problem.Destination.Lng}
	d.eval = evaluator.New(destination, len(problem.Passengers), cfg.AssumedSpeedKPH)

	population := seed.Population(problem, cfg.PopulationSize, d.rng)
	for _, sol := range population {
		assertConsistent(sol)
		d.eval.Score(sol)
	}

	eliteCount := int(float64(cfg.PopulationSize) * cfg.ElitismRate)
	if eliteCount < 1 {
		eliteCount = 1
	}

	// capacityIssue mirrors spec.md §4.F's capacity_issue flag: once total
	// capacity falls short, the acceptance rule in the loop below stops
	// requiring a candidate to be capacity-clean before it can replace the
	// tracked best, since no capacity-clean candidate can exist.
	capacityIssue := problem.HasCapacityShortfall()

	bestSolution := bestOf(population).Clone()
	bestScore := bestSolution.Score
	stagnantGenerations := 0

	generation := 0
	for generation < cfg.MaxGenerations && stagnantGenerations < cfg.MaxStagnantGenerations {
		population = d.nextGeneration(population, problem.Vehicles, destination, cfg, eliteCount)

		currentBest := bestOf(population)
		d.history = append(d.history, GenerationStat{
			Generation: generation,
			BestScore:  currentBest.Score,
			MeanScore:  meanScore(population),
		})

		accept := currentBest.Score > bestScore && (!currentBest.HasOverload() || capacityIssue)
		if accept {
			bestSolution = currentBest.Clone()
			bestScore = currentBest.Score
			stagnantGenerations = 0
		} else {
			stagnantGenerations++
		}

		generation++
	}

	// Recompute final per-vehicle metrics on the tracked best, per spec.md
	// §4.F step 5 — it may have been cloned several generations ago from a
	// population that has since moved on.
	d.eval.Score(bestSolution)

	best := bestSolution
	if capacityIssue {
		best.AddWarning(model.ErrCapacityShortage.Error())
	}
	if best.HasOverload() {
		best.AddWarning("one or more vehicles are carrying more passengers than their capacity allows")
	}

	log.Printf("[GA] run=%s complete: generations=%s best_score=%.2f assigned=%d/%d",
		runID, humanize.Comma(int64(len(d.history))), best.Score, best.AssignedCount(), len(problem.Passengers))

	return best
}

// nextGeneration builds one new population: the top eliteCount solutions
// carry over unchanged, and the rest are filled by selecting two parents
// via tournament, crossing them over, and mutating the child with
// probability cfg.MutationRate (spec.md §4.F).
func (d *Driver) nextGeneration(population []*model.Solution, vehicles []model.Vehicle, destination geo.Point, cfg model.AlgorithmConfig, eliteCount int) []*model.Solution {
	ranked := append([]*model.Solution(nil), population...)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	next := make([]*model.Solution, 0, len(population))
	for i := 0; i < eliteCount && i < len(ranked); i++ {
		next = append(next, ranked[i].Clone())
	}

	for len(next) < len(population) {
		parent1 := tournamentSelect(d.rng, population, cfg.TournamentSize)
		parent2 := tournamentSelect(d.rng, population, cfg.TournamentSize)

		child := crossover(d.rng, parent1, parent2, vehicles, destination)
		if d.rng.Float64() < cfg.MutationRate {
			mutate(d.rng, child, destination)
		}

		assertConsistent(child)
		d.eval.Score(child)
		next = append(next, child)
	}

	return next
}

func bestOf(population []*model.Solution) *model.Solution {
	best := population[0]
	for _, sol := range population[1:] {
		if sol.Score > best.Score {
			best = sol
		}
	}
	return best
}

func meanScore(population []*model.Solution) float64 {
	sum := 0.0
	for _, sol := range population {
		sum += sol.Score
	}
	return sum / float64(len(population))
}

// assertConsistent panics with an *ErrInternalInconsistency if sol assigns
// any passenger to more than one vehicle. Every operator in this package is
// expected to preserve the invariant on its own; this is a cheap guard that
// turns a silent corruption into an immediate, diagnosable failure
// (spec.md §7.3).
func assertConsistent(sol *model.Solution) {
	seenIn := make(map[int64]int)
	for vi, a := range sol.Assignments {
		for _, p := range a.Passengers {
			if other, ok := seenIn[p.ID]; ok {
				panic(&ErrInternalInconsistency{
					Reason:        "passenger assigned to more than one vehicle",
					PassengerID:   p.ID,
					VehicleIndexA: other,
					VehicleIndexB: vi,
				})
			}
			seenIn[p.ID] = vi
		}
	}
}
