// Package migrate is the single entry point for database maintenance. Each
// migration is an explicit, idempotent function that reports row counts
// before and after, so an operator can audit exactly what a run changed.
// Applied migrations are recorded in schema_migrations and skipped on later
// runs.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Result carries the audit counts of one migration run
type Result struct {
	Before int
	After  int
}

// Migration is one named, idempotent maintenance step
type Migration struct {
	Name string
	Run  func(ctx context.Context, db *sql.DB) (Result, error)
}

// Runner executes migrations in order, once each
type Runner struct {
	db         *sql.DB
	migrations []Migration
}

// NewRunner creates a runner with the built-in migration list
func NewRunner(db *sql.DB) *Runner {
	return &Runner{
		db:         db,
		migrations: builtinMigrations(),
	}
}

// Apply runs every pending migration in registration order. It stops at the
// first failure; already-applied migrations stay recorded.
func (r *Runner) Apply(ctx context.Context) error {
	if err := r.ensureMigrationTable(ctx); err != nil {
		return err
	}

	for _, m := range r.migrations {
		applied, err := r.isApplied(ctx, m.Name)
		if err != nil {
			return err
		}
		if applied {
			log.Printf("migrate: %s already applied, skipping", m.Name)
			continue
		}

		result, err := m.Run(ctx, r.db)
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}

		if err := r.markApplied(ctx, m.Name); err != nil {
			return err
		}

		log.Printf("migrate: %s applied, before=%d after=%d", m.Name, result.Before, result.After)
	}

	return nil
}

func (r *Runner) ensureMigrationTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func (r *Runner) isApplied(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schema_migrations WHERE name = $1`, name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", name, err)
	}
	return count > 0, nil
}

func (r *Runner) markApplied(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name,
	)
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}
	return nil
}
