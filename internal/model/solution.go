package model

// VehicleAssignment is one vehicle's pickup list within a Solution: the
// vehicle starts at its own coordinates, visits Passengers in order, and
// ends at the problem's destination. TotalDistanceKm/TotalTimeMin are
// derived by internal/routemetrics and cached here until the assignment
// changes.
type VehicleAssignment struct {
	Vehicle         Vehicle     `json:"vehicle"`
	Passengers      []Passenger `json:"passengers"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	TotalTimeMin    float64     `json:"total_time_min"`
}

// Len reports how many passengers this vehicle currently carries.
func (a *VehicleAssignment) Len() int {
	return len(a.Passengers)
}

// Overloaded reports whether this vehicle carries more passengers than its
// seat capacity allows. Overload can exist transiently mid-search; it is
// penalized by the evaluator, not forbidden outright (spec.md §3).
func (a *VehicleAssignment) Overloaded() bool {
	return len(a.Passengers) > a.Vehicle.Capacity
}

// Solution is one candidate assignment-and-ordering of every passenger to
// at most one vehicle, plus the scalar fitness score the evaluator last
// computed for it.
type Solution struct {
	Assignments []VehicleAssignment `json:"assignments"`
	Score       float64             `json:"score"`
	warnings    []string
}

// NewBlankSolution returns a Solution with one empty VehicleAssignment per
// vehicle, in the same order as vehicles, ready for seeders/crossover to
// fill in.
func NewBlankSolution(vehicles []Vehicle) *Solution {
	assignments := make([]VehicleAssignment, len(vehicles))
	for i, v := range vehicles {
		assignments[i] = VehicleAssignment{Vehicle: v}
	}
	return &Solution{Assignments: assignments}
}

// Clone produces a deep copy safe for independent mutation: the returned
// Solution shares no backing array with s, so an operator can freely
// rewrite it without corrupting s (spec.md §9's explicit deep-copy
// contract).
func (s *Solution) Clone() *Solution {
	clone := &Solution{
		Assignments: make([]VehicleAssignment, len(s.Assignments)),
		Score:       s.Score,
	}
	for i, a := range s.Assignments {
		clone.Assignments[i] = VehicleAssignment{
			Vehicle:         a.Vehicle,
			Passengers:      append([]Passenger(nil), a.Passengers...),
			TotalDistanceKm: a.TotalDistanceKm,
			TotalTimeMin:    a.TotalTimeMin,
		}
	}
	if s.warnings != nil {
		clone.warnings = append([]string(nil), s.warnings...)
	}
	return clone
}

// AssignedPassengerIDs returns the set of passenger IDs currently placed in
// some vehicle. The GA operators keep their own per-child sets and do not
// call it.
func (s *Solution) AssignedPassengerIDs() map[int64]bool {
	assigned := make(map[int64]bool)
	for _, a := range s.Assignments {
		for _, p := range a.Passengers {
			assigned[p.ID] = true
		}
	}
	return assigned
}

// AssignedCount returns how many passengers are placed in some vehicle.
func (s *Solution) AssignedCount() int {
	count := 0
	for _, a := range s.Assignments {
		count += len(a.Passengers)
	}
	return count
}

// UsedVehicleCount returns how many vehicles carry at least one passenger.
func (s *Solution) UsedVehicleCount() int {
	count := 0
	for _, a := range s.Assignments {
		if len(a.Passengers) > 0 {
			count++
		}
	}
	return count
}

// OverloadedVehicleCount returns how many vehicles exceed their capacity.
func (s *Solution) OverloadedVehicleCount() int {
	count := 0
	for _, a := range s.Assignments {
		if a.Overloaded() {
			count++
		}
	}
	return count
}

// HasOverload reports whether any vehicle in the solution is over capacity.
func (s *Solution) HasOverload() bool {
	return s.OverloadedVehicleCount() > 0
}

// AddWarning appends a human-readable note about this solution (e.g. a
// capacity shortage or an overloaded vehicle), mirroring
// the teacher's RoutingResult.Warnings.
func (s *Solution) AddWarning(w string) {
	s.warnings = append(s.warnings, w)
}

// Warnings returns the notes collected about this solution so far.
func (s *Solution) Warnings() []string {
	return s.warnings
}
