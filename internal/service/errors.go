package service

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned when authentication fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email is already registered")

	// ErrUnknownUser is returned when a document request names a user that
	// cannot be resolved
	ErrUnknownUser = errors.New("unknown user")

	// ErrUnknownDocumentType is returned for document keys with no renderer
	ErrUnknownDocumentType = errors.New("unknown document type")

	// ErrInvalidForm is returned when submitted form data fails validation
	ErrInvalidForm = errors.New("form data is invalid")

	// ErrInvalidCSRFToken is returned when the CSRF token is missing or stale
	ErrInvalidCSRFToken = errors.New("invalid CSRF token")

	// ErrRateLimitExceeded is returned when rate limit is exceeded
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)
