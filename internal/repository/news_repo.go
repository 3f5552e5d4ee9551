package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

// NewsRepository handles news persistence
type NewsRepository struct {
	db *sql.DB
}

// NewNewsRepository creates a new news repository on a shared connection
func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// List returns all news items, newest first
func (r *NewsRepository) List(ctx context.Context) ([]*domain.News, error) {
	query := `
		SELECT id, title, body, author, created_at, updated_at
		FROM news
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	var items []*domain.News
	for rows.Next() {
		var item domain.News
		if err := rows.Scan(&item.ID, &item.Title, &item.Body, &item.Author, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan news item: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

// FindByID finds a news item by ID
func (r *NewsRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	query := `
		SELECT id, title, body, author, created_at, updated_at
		FROM news
		WHERE id = $1
	`

	var item domain.News
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Body, &item.Author, &item.CreatedAt, &item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find news item: %w", err)
	}

	return &item, nil
}

// Create creates a news item
func (r *NewsRepository) Create(ctx context.Context, item *domain.News) error {
	query := `
		INSERT INTO news (id, title, body, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Body, item.Author, item.CreatedAt, item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create news item: %w", err)
	}

	return nil
}

// Update updates a news item
func (r *NewsRepository) Update(ctx context.Context, item *domain.News) error {
	query := `
		UPDATE news
		SET title = $2, body = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Body, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update news item: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("news item not found")
	}

	return nil
}

// Delete deletes a news item by ID
func (r *NewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM news WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete news item: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("news item not found")
	}

	return nil
}
