package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/api/middleware"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/schema"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/service"
)

// DocumentHandler handles document catalog and generation requests
type DocumentHandler struct {
	documentService *service.DocumentService
	catalog         *schema.Catalog
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, catalog *schema.Catalog) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		catalog:         catalog,
	}
}

// Catalog handles GET /api/v1/documents/catalog
func (h *DocumentHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog)
}

// Generate handles POST /api/documents/generate/{key} and its
// /api/auto-documents/{key} alias. On success the rendered document is
// streamed as an attachment.
func (h *DocumentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req domain.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	authedID := middleware.GetUserID(r.Context())
	if authedID == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// The body's userId must match the token's subject; an absent body
	// value falls back to the authenticated user
	userID := *authedID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil || parsed != userID {
			respondError(w, http.StatusForbidden, "You can only generate documents for your own account")
			return
		}
	}

	doc, err := h.documentService.Generate(r.Context(), key, req.FormData, userID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownDocumentType) {
			respondError(w, http.StatusNotFound, "Unknown document type")
			return
		}
		if errors.Is(err, service.ErrUnknownUser) {
			respondError(w, http.StatusUnauthorized, "Unknown user")
			return
		}
		// Renderer and template failures stay generic; the cause is logged
		// upstream, never sent to the client
		respondError(w, http.StatusInternalServerError, "Failed to generate document")
		return
	}

	w.Header().Set("Content-Type", domain.DocxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Content)
}
