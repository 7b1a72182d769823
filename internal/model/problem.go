package model

// ProblemInput is the immutable input to one GA run: who needs a ride, who
// is driving, and where everyone is headed. The random source that drives
// the search itself is owned by the GA driver, not the problem (see
// internal/ga.Driver), so that a single fixed seed deterministically
// reproduces a run regardless of how many times ProblemInput is read.
type ProblemInput struct {
	Passengers  []Passenger `json:"passengers"`
	Vehicles    []Vehicle   `json:"vehicles"`
	Destination Coordinates `json:"destination"`

	// TargetArrivalMinutes is minutes-past-midnight. Stored for the caller's
	// benefit; the evaluator does not currently consume it (spec.md §9,
	// option (a) — preserved as stored-but-unused metadata).
	TargetArrivalMinutes int `json:"target_arrival_minutes"`

	Config AlgorithmConfig `json:"config"`
}

// Coordinates is a geographic point expressed the way callers at the
// collaborator boundary (internal/store) pass destinations around.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TotalCapacity sums every vehicle's seat count.
func (p ProblemInput) TotalCapacity() int {
	total := 0
	for _, v := range p.Vehicles {
		total += v.Capacity
	}
	return total
}

// HasCapacityShortfall reports whether total vehicle capacity is less than
// the number of passengers needing a ride — the ErrCapacityShortage
// condition of spec.md §7.2. Not an error returned to callers: the engine
// runs anyway and flags the condition on the resulting Solution.
func (p ProblemInput) HasCapacityShortfall() bool {
	return p.TotalCapacity() < len(p.Passengers)
}

// Degenerate reports whether the problem has no passengers or no vehicles —
// the ErrDegenerateInput condition of spec.md §7.1, the one case the GA
// driver short-circuits without iterating.
func (p ProblemInput) Degenerate() bool {
	return len(p.Passengers) == 0 || len(p.Vehicles) == 0
}
