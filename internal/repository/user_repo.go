package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

// UserRepository handles user and company-profile persistence
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository opens the database connection and creates the repository
func NewUserRepository(databaseURL string) (*UserRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return &UserRepository{db: db}, nil
}

// GetDB returns the underlying database connection for repositories that
// share it
func (r *UserRepository) GetDB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *UserRepository) Close() error {
	return r.db.Close()
}

const userColumns = `
	id, email, password_hash, full_name, is_admin,
	company_name, address, phone, company_email, tax_number,
	registration_number, manager, activity_description,
	created_at, is_active
`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.IsAdmin,
		&user.CompanyProfile.CompanyName,
		&user.CompanyProfile.Address,
		&user.CompanyProfile.Phone,
		&user.CompanyProfile.Email,
		&user.CompanyProfile.TaxNumber,
		&user.CompanyProfile.RegistrationNumber,
		&user.CompanyProfile.Manager,
		&user.CompanyProfile.ActivityDescription,
		&user.CreatedAt,
		&user.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.IsAdmin,
		user.CompanyProfile.CompanyName,
		user.CompanyProfile.Address,
		user.CompanyProfile.Phone,
		user.CompanyProfile.Email,
		user.CompanyProfile.TaxNumber,
		user.CompanyProfile.RegistrationNumber,
		user.CompanyProfile.Manager,
		user.CompanyProfile.ActivityDescription,
		user.CreatedAt,
		user.IsActive,
	)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// UpdateCompanyProfile updates the company subrecord of a user
func (r *UserRepository) UpdateCompanyProfile(ctx context.Context, id uuid.UUID, profile domain.CompanyProfile) error {
	query := `
		UPDATE users
		SET company_name = $2, address = $3, phone = $4, company_email = $5,
		    tax_number = $6, registration_number = $7, manager = $8,
		    activity_description = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		id,
		profile.CompanyName,
		profile.Address,
		profile.Phone,
		profile.Email,
		profile.TaxNumber,
		profile.RegistrationNumber,
		profile.Manager,
		profile.ActivityDescription,
	)

	if err != nil {
		return fmt.Errorf("failed to update company profile: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}
