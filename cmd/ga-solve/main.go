// Command ga-solve loads a problem from a SQLite-backed store, runs the
// genetic algorithm, and writes the best solution back. It is the thin
// glue between internal/store and internal/ga described in SPEC_FULL.md §3;
// the GA core itself never imports internal/store or this package.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"morningrun-router/internal/config"
	"morningrun-router/internal/ga"
	"morningrun-router/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configFile := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Opening database at %s", cfg.DatabasePath)
	db, err := store.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	problem, err := db.LoadProblem(ctx)
	if err != nil {
		return fmt.Errorf("failed to load problem: %w", err)
	}
	problem.Config = cfg.Algorithm

	if problem.Degenerate() {
		return fmt.Errorf("problem has no passengers or no vehicles; nothing to solve")
	}

	log.Printf("Solving for %d passengers across %d vehicles (seed=%d)",
		len(problem.Passengers), len(problem.Vehicles), cfg.Seed)

	driver := ga.NewDriver(cfg.Seed)
	best := driver.Run(problem)

	for _, w := range best.Warnings() {
		log.Printf("[GA] warning: %s", w)
	}

	if err := db.SaveSolution(ctx, cfg.Seed, best); err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}

	log.Printf("Solution saved: score=%.2f assigned=%d/%d",
		best.Score, best.AssignedCount(), len(problem.Passengers))

	return nil
}
