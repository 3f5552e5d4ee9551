package domain

// DocxContentType is the MIME type of generated Word documents
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// GenerateRequest is the body of a document-generation call:
// the requesting user plus the flat key/value form payload.
type GenerateRequest struct {
	UserID   string         `json:"userId"`
	FormData map[string]any `json:"formData"`
}

// GeneratedDocument is an in-memory rendered document. It is never persisted;
// it exists only long enough to be streamed to the response.
type GeneratedDocument struct {
	Filename string
	Content  []byte
}

// MessageResponse is the JSON body for non-binary confirmations and for
// every failure response.
type MessageResponse struct {
	Message string `json:"message"`
}
