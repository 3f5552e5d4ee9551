package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/docgen"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

// DocumentService orchestrates document generation: it resolves the
// requesting user's company profile and dispatches to the renderer
// registered for the document-type key.
type DocumentService struct {
	users    UserStore
	registry *docgen.Registry
	now      func() time.Time
}

// NewDocumentService creates a new document service
func NewDocumentService(users UserStore, registry *docgen.Registry) *DocumentService {
	return &DocumentService{
		users:    users,
		registry: registry,
		now:      time.Now,
	}
}

// Generate renders the document identified by key from the submitted form
// data, falling back to the user's company profile for values the form
// omits. The result is held in memory only and streamed by the caller.
func (s *DocumentService) Generate(ctx context.Context, key string, formData map[string]any, userID uuid.UUID) (*domain.GeneratedDocument, error) {
	renderer, ok := s.registry.Get(key)
	if !ok {
		return nil, ErrUnknownDocumentType
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	doc, err := renderer(stringifyForm(formData), user.CompanyProfile, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to render document %s: %w", key, err)
	}

	return doc, nil
}

// stringifyForm flattens the JSON form payload into the string map the
// renderers consume. Checkboxes arrive as booleans, numbers as float64.
func stringifyForm(formData map[string]any) map[string]string {
	out := make(map[string]string, len(formData))

	for key, value := range formData {
		switch v := value.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = v
		case bool:
			if v {
				out[key] = "true"
			} else {
				out[key] = ""
			}
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			out[key] = fmt.Sprint(v)
		}
	}

	return out
}
