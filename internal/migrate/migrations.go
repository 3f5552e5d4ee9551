package migrate

import (
	"context"
	"database/sql"
	"fmt"
)

func builtinMigrations() []Migration {
	return []Migration{
		{Name: "001_create_base_tables", Run: createBaseTables},
		{Name: "002_backfill_admin_flag", Run: backfillAdminFlag},
		{Name: "003_normalize_tax_numbers", Run: normalizeTaxNumbers},
		{Name: "004_rebuild_news_indexes", Run: rebuildNewsIndexes},
	}
}

func createBaseTables(ctx context.Context, db *sql.DB) (Result, error) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			company_name TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			company_email TEXT NOT NULL DEFAULT '',
			tax_number TEXT NOT NULL DEFAULT '',
			registration_number TEXT NOT NULL DEFAULT '',
			manager TEXT NOT NULL DEFAULT '',
			activity_description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS news (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			sector TEXT NOT NULL DEFAULT '',
			amount NUMERIC,
			deadline TIMESTAMPTZ,
			author TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return Result{}, fmt.Errorf("failed to create table: %w", err)
		}
	}

	count, err := countRows(ctx, db, "users")
	if err != nil {
		return Result{}, err
	}
	return Result{Before: count, After: count}, nil
}

// backfillAdminFlag marks accounts listed in the legacy admin_emails table
// as admins. Installations without that table have nothing to backfill.
func backfillAdminFlag(ctx context.Context, db *sql.DB) (Result, error) {
	before, err := countWhere(ctx, db, "users", "is_admin")
	if err != nil {
		return Result{}, err
	}

	var legacyExists bool
	err = db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'admin_emails')`,
	).Scan(&legacyExists)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check legacy table: %w", err)
	}

	if legacyExists {
		_, err = db.ExecContext(ctx,
			`UPDATE users SET is_admin = TRUE WHERE email IN (SELECT email FROM admin_emails)`,
		)
		if err != nil {
			return Result{}, fmt.Errorf("failed to backfill admin flag: %w", err)
		}
	}

	after, err := countWhere(ctx, db, "users", "is_admin")
	if err != nil {
		return Result{}, err
	}
	return Result{Before: before, After: after}, nil
}

// normalizeTaxNumbers strips whitespace from stored company tax numbers so
// the renderer and lookups see one canonical form
func normalizeTaxNumbers(ctx context.Context, db *sql.DB) (Result, error) {
	before, err := countWhere(ctx, db, "users", `tax_number ~ '\s'`)
	if err != nil {
		return Result{}, err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE users SET tax_number = regexp_replace(tax_number, '\s', '', 'g') WHERE tax_number ~ '\s'`,
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to normalize tax numbers: %w", err)
	}

	after, err := countWhere(ctx, db, "users", `tax_number ~ '\s'`)
	if err != nil {
		return Result{}, err
	}
	return Result{Before: before, After: after}, nil
}

func rebuildNewsIndexes(ctx context.Context, db *sql.DB) (Result, error) {
	count, err := countRows(ctx, db, "news")
	if err != nil {
		return Result{}, err
	}

	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_news_created_at ON news (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_investments_created_at ON investments (created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return Result{}, fmt.Errorf("failed to rebuild index: %w", err)
		}
	}

	return Result{Before: count, After: count}, nil
}

func countRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

func countWhere(ctx context.Context, db *sql.DB, table, condition string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+` WHERE `+condition).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}
