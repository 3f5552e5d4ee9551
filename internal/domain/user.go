package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered platform account
type User struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Email          string         `json:"email" db:"email"`
	PasswordHash   string         `json:"-" db:"password_hash"`
	FullName       string         `json:"full_name" db:"full_name"`
	IsAdmin        bool           `json:"is_admin" db:"is_admin"`
	CompanyProfile CompanyProfile `json:"company_profile"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	IsActive       bool           `json:"is_active" db:"is_active"`
}

// CompanyProfile is the denormalized company record carried on each user.
// The document renderer reads it as fallback values when a submitted form
// omits a field; nothing in the generation path ever writes it.
type CompanyProfile struct {
	CompanyName         string `json:"company_name" db:"company_name"`
	Address             string `json:"address" db:"address"`
	Phone               string `json:"phone" db:"phone"`
	Email               string `json:"company_email" db:"company_email"`
	TaxNumber           string `json:"tax_number" db:"tax_number"`
	RegistrationNumber  string `json:"registration_number" db:"registration_number"`
	Manager             string `json:"manager" db:"manager"`
	ActivityDescription string `json:"activity_description" db:"activity_description"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a successful authentication response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
}

// UpdateCompanyProfileRequest carries a partial company-profile update.
// Nil fields are left untouched.
type UpdateCompanyProfileRequest struct {
	CompanyName         *string `json:"company_name,omitempty"`
	Address             *string `json:"address,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"company_email,omitempty"`
	TaxNumber           *string `json:"tax_number,omitempty"`
	RegistrationNumber  *string `json:"registration_number,omitempty"`
	Manager             *string `json:"manager,omitempty"`
	ActivityDescription *string `json:"activity_description,omitempty"`
}
