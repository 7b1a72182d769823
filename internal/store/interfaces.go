// Package store defines the persistence boundary the GA core sits behind.
// spec.md §6 treats persistence as an external collaborator: the core never
// imports this package, only cmd/ga-solve wires the two together. Grounded
// on internal/database/interfaces.go's repository-interface style in the
// teacher repo.
package store

import (
	"context"

	"morningrun-router/internal/model"
)

// ProblemSource loads a ProblemInput ready for the GA driver to run. A
// caller backing this with a database, a config file, or a hardcoded
// fixture are all equally valid implementations.
type ProblemSource interface {
	LoadProblem(ctx context.Context) (model.ProblemInput, error)
}

// SolutionSink persists a Solution once the GA driver has produced one,
// tagged with the run's random seed for later reproduction.
type SolutionSink interface {
	SaveSolution(ctx context.Context, seed int64, sol *model.Solution) error
}

// RunRecord mirrors one row of the runs table that SaveSolution writes.
// Nothing in this package reads runs back into it.
type RunRecord struct {
	ID              int64
	Seed            int64
	Score           float64
	AssignedCount   int
	UnassignedCount int
	CreatedAt       string
}
