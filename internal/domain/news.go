package domain

import (
	"time"

	"github.com/google/uuid"
)

// News is an admin-curated news item shown on the platform
type News struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Investment is an admin-curated investment opportunity listing
type Investment struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Sector      string     `json:"sector" db:"sector"`
	Amount      *float64   `json:"amount,omitempty" db:"amount"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	Author      string     `json:"author" db:"author"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// NewsRequest is the create/update body for a news item
type NewsRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// InvestmentRequest is the create/update body for an investment listing
type InvestmentRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Sector      string     `json:"sector"`
	Amount      *float64   `json:"amount,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}
