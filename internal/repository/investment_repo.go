package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

// InvestmentRepository handles investment-listing persistence
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new investment repository on a shared
// connection
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// List returns all investment listings, newest first
func (r *InvestmentRepository) List(ctx context.Context) ([]*domain.Investment, error) {
	query := `
		SELECT id, title, description, sector, amount, deadline, author, created_at, updated_at
		FROM investments
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	var items []*domain.Investment
	for rows.Next() {
		var item domain.Investment
		err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Sector,
			&item.Amount, &item.Deadline, &item.Author, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

// FindByID finds an investment listing by ID
func (r *InvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	query := `
		SELECT id, title, description, sector, amount, deadline, author, created_at, updated_at
		FROM investments
		WHERE id = $1
	`

	var item domain.Investment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Description, &item.Sector,
		&item.Amount, &item.Deadline, &item.Author, &item.CreatedAt, &item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}

	return &item, nil
}

// Create creates an investment listing
func (r *InvestmentRepository) Create(ctx context.Context, item *domain.Investment) error {
	query := `
		INSERT INTO investments (id, title, description, sector, amount, deadline, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Description, item.Sector,
		item.Amount, item.Deadline, item.Author, item.CreatedAt, item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}

	return nil
}

// Update updates an investment listing
func (r *InvestmentRepository) Update(ctx context.Context, item *domain.Investment) error {
	query := `
		UPDATE investments
		SET title = $2, description = $3, sector = $4, amount = $5, deadline = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Description, item.Sector, item.Amount, item.Deadline, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("investment not found")
	}

	return nil
}

// Delete deletes an investment listing by ID
func (r *InvestmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM investments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("investment not found")
	}

	return nil
}
