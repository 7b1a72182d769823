package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"morningrun-router/internal/model"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// SQLiteStore is a ProblemSource and SolutionSink backed by
// modernc.org/sqlite, the teacher's own driver. Grounded on
// internal/sqlite/store.go's pragma setup, New(path) constructor, and
// schema-version-table pattern, re-targeted from the teacher's
// participants/drivers/events tables to this module's passengers, vehicles,
// and GA runs.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (creating if necessary) a SQLite database at dbPath and
// ensures its schema is current.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	log.Printf("[STORE] opening sqlite database at %s", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return s.createSchema()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS passengers (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS vehicles (
		id INTEGER PRIMARY KEY,
		driver_name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		capacity INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS destination (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		target_arrival_minutes INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed INTEGER NOT NULL,
		score REAL NOT NULL,
		assigned_count INTEGER NOT NULL,
		unassigned_count INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS run_assignments (
		run_id INTEGER NOT NULL,
		vehicle_id INTEGER NOT NULL,
		route_order INTEGER NOT NULL,
		passenger_id INTEGER NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_run_assignments_run ON run_assignments(run_id);
	`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Printf("[STORE] schema initialized (version %d)", schemaVersion)
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return s.db.Close()
}

// HealthCheck verifies the database connection is alive.
func (s *SQLiteStore) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// LoadProblem reads every passenger, vehicle, and the destination row into
// a ProblemInput. The caller is expected to fill in Config itself; this
// store has no opinion on GA tuning parameters.
func (s *SQLiteStore) LoadProblem(ctx context.Context) (model.ProblemInput, error) {
	var problem model.ProblemInput

	prows, err := s.db.QueryContext(ctx, "SELECT id, name, lat, lng FROM passengers ORDER BY id")
	if err != nil {
		return problem, fmt.Errorf("failed to list passengers: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var p model.Passenger
		if err := prows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lng); err != nil {
			return problem, fmt.Errorf("failed to scan passenger: %w", err)
		}
		problem.Passengers = append(problem.Passengers, p)
	}
	if err := prows.Err(); err != nil {
		return problem, fmt.Errorf("failed reading passengers: %w", err)
	}

	vrows, err := s.db.QueryContext(ctx, "SELECT id, driver_name, lat, lng, capacity FROM vehicles ORDER BY id")
	if err != nil {
		return problem, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer vrows.Close()
	for vrows.Next() {
		var v model.Vehicle
		if err := vrows.Scan(&v.ID, &v.DriverName, &v.Lat, &v.Lng, &v.Capacity); err != nil {
			return problem, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		problem.Vehicles = append(problem.Vehicles, v)
	}
	if err := vrows.Err(); err != nil {
		return problem, fmt.Errorf("failed reading vehicles: %w", err)
	}

	row := s.db.QueryRowContext(ctx, "SELECT lat, lng, target_arrival_minutes FROM destination WHERE id = 1")
	if err := row.Scan(&problem.Destination.Lat, &problem.Destination.Lng, &problem.TargetArrivalMinutes); err != nil {
		if err != sql.ErrNoRows {
			return problem, fmt.Errorf("failed to load destination: %w", err)
		}
	}

	return problem, nil
}

// SaveSolution persists sol's vehicle assignments and pickup order under a
// new run row tagged with seed.
func (s *SQLiteStore) SaveSolution(ctx context.Context, seed int64, sol *model.Solution) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The store only sees the solution, not the original passenger count,
	// so it has no way to know how many passengers were never assigned;
	// callers that care should read Solution.Warnings() before saving.
	const unassigned = 0

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (seed, score, assigned_count, unassigned_count) VALUES (?, ?, ?, ?)",
		seed, sol.Score, sol.AssignedCount(), unassigned)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO run_assignments (run_id, vehicle_id, route_order, passenger_id) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare assignment insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range sol.Assignments {
		for order, p := range a.Passengers {
			if _, err := stmt.ExecContext(ctx, runID, a.Vehicle.ID, order, p.ID); err != nil {
				return fmt.Errorf("failed to insert assignment: %w", err)
			}
		}
	}

	return tx.Commit()
}
