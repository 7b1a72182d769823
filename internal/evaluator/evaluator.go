// Package evaluator scores a Solution. It is the re-architected
// replacement for internal/routing/fairness.go's fairnessTuple in the
// teacher repo: that tuple was a lexicographic comparator over a routing
// candidate (unassigned count, unused drivers, detour); this package
// collapses the same kind of signal into the single additive scalar
// spec.md §4.C specifies, because the GA driver needs one orderable number
// per candidate, not a tuple comparator.
package evaluator

import (
	"github.com/samber/lo"

	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
	"morningrun-router/internal/routemetrics"
)

// Weights controls the relative importance of each scoring term. The
// defaults match spec.md §4.C; the relative ordering (unassigned dominates,
// then overload, then assignment count, then vehicle-count reduction, then
// raw distance/time) must be preserved by any caller who tunes these.
type Weights struct {
	DistanceNumerator  float64
	AssignmentWeight   float64
	VehicleUsageWeight float64
	OverloadPenalty    float64
	TimeNumerator      float64
	UnassignedPenalty  float64
}

// DefaultWeights returns spec.md §4.C's weighted-sum coefficients.
func DefaultWeights() Weights {
	return Weights{
		DistanceNumerator:  1000,
		AssignmentWeight:   100,
		VehicleUsageWeight: -10,
		OverloadPenalty:    -200,
		TimeNumerator:      500,
		UnassignedPenalty:  -1000,
	}
}

// Breakdown is the set of raw aggregates the score was computed from,
// exposed mainly so tests and logging can explain a score without
// recomputing it.
type Breakdown struct {
	TotalDistanceKm    float64
	MaxTimeMin         float64
	AssignedCount      int
	UsedVehicles       int
	OverloadedVehicles int
	UnassignedCount    int
}

// Evaluator scores Solutions against one fixed destination and passenger
// count, the two values that stay constant across an entire GA run.
type Evaluator struct {
	Destination     geo.Point
	TotalPassengers int
	Weights         Weights
	AssumedSpeedKPH float64
}

// New returns an Evaluator configured from the problem's destination and
// passenger count, using the default weights.
func New(destination geo.Point, totalPassengers int, assumedSpeedKPH float64) *Evaluator {
	return &Evaluator{
		Destination:     destination,
		TotalPassengers: totalPassengers,
		Weights:         DefaultWeights(),
		AssumedSpeedKPH: assumedSpeedKPH,
	}
}

// Score recomputes every non-empty vehicle's route totals (writing them
// onto sol, per spec.md §5's "evaluator writes per-vehicle totals onto the
// candidate currently being scored" sharing rule) and returns the scalar
// fitness plus the raw breakdown it was built from.
func (e *Evaluator) Score(sol *model.Solution) (float64, Breakdown) {
	for i := range sol.Assignments {
		a := &sol.Assignments[i]
		if len(a.Passengers) == 0 {
			a.TotalDistanceKm, a.TotalTimeMin = 0, 0
			continue
		}
		routemetrics.RecomputeAssignment(a, e.Destination, e.AssumedSpeedKPH)
	}

	nonEmpty := lo.Filter(sol.Assignments, func(a model.VehicleAssignment, _ int) bool {
		return len(a.Passengers) > 0
	})

	totalDistance := lo.SumBy(nonEmpty, func(a model.VehicleAssignment) float64 {
		return a.TotalDistanceKm
	})

	maxTime := 0.0
	for _, a := range nonEmpty {
		if a.TotalTimeMin > maxTime {
			maxTime = a.TotalTimeMin
		}
	}

	breakdown := Breakdown{
		TotalDistanceKm:    totalDistance,
		MaxTimeMin:         maxTime,
		AssignedCount:      sol.AssignedCount(),
		UsedVehicles:       sol.UsedVehicleCount(),
		OverloadedVehicles: sol.OverloadedVehicleCount(),
		UnassignedCount:    e.TotalPassengers - sol.AssignedCount(),
	}

	score := 0.0
	if breakdown.TotalDistanceKm > 0 {
		score += e.Weights.DistanceNumerator / breakdown.TotalDistanceKm
	}
	score += float64(breakdown.AssignedCount) * e.Weights.AssignmentWeight
	score += float64(breakdown.UsedVehicles) * e.Weights.VehicleUsageWeight
	score += float64(breakdown.OverloadedVehicles) * e.Weights.OverloadPenalty
	if breakdown.MaxTimeMin > 0 {
		score += e.Weights.TimeNumerator / breakdown.MaxTimeMin
	}
	score += float64(breakdown.UnassignedCount) * e.Weights.UnassignedPenalty

	sol.Score = score
	return score, breakdown
}
