// Package nexa provides a Go client for the Nexa platform API: an HTTP
// client with Bearer and CSRF handling, and a step-form wizard that drives
// a document template's fields through validated steps up to submission.
package nexa

import "fmt"

// GenerateRequest is the payload of a document-generation call
type GenerateRequest struct {
	UserID   string            `json:"userId"`
	FormData map[string]string `json:"formData"`
}

// DocumentResult is the outcome of a successful generation call: either a
// binary document with its filename, or a textual confirmation message.
type DocumentResult struct {
	// Filename and Data are set when the server streamed a document
	Filename string
	Data     []byte

	// Message is set for non-binary confirmations
	Message string
}

// IsDocument reports whether the result carries a binary document
func (r *DocumentResult) IsDocument() bool {
	return len(r.Data) > 0
}

// APIError is a non-2xx response from the platform
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (status %d)", e.Message, e.StatusCode)
}

// messageBody is the JSON failure/confirmation body
type messageBody struct {
	Message string `json:"message"`
}
