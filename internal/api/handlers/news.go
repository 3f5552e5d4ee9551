package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/api/middleware"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/repository"
)

// NewsHandler handles news-related HTTP requests. Reads are open to every
// authenticated user; writes require an admin account.
type NewsHandler struct {
	newsRepo *repository.NewsRepository
	userRepo *repository.UserRepository
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsRepo *repository.NewsRepository, userRepo *repository.UserRepository) *NewsHandler {
	return &NewsHandler{
		newsRepo: newsRepo,
		userRepo: userRepo,
	}
}

// List handles GET /api/v1/news
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.newsRepo.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list news")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"news": items})
}

// Get handles GET /api/v1/news/{id}
func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news id")
		return
	}

	item, err := h.newsRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load news item")
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "News item not found")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Create handles POST /api/v1/news (admin only)
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.userRepo)
	if !ok {
		return
	}

	var req domain.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Body == "" {
		respondError(w, http.StatusBadRequest, "title and body are required")
		return
	}

	now := time.Now()
	item := &domain.News{
		ID:        uuid.New(),
		Title:     req.Title,
		Body:      req.Body,
		Author:    admin.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.newsRepo.Create(r.Context(), item); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create news item")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/v1/news/{id} (admin only)
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.userRepo); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news id")
		return
	}

	var req domain.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.newsRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load news item")
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "News item not found")
		return
	}

	item.Title = req.Title
	item.Body = req.Body
	item.UpdatedAt = time.Now()

	if err := h.newsRepo.Update(r.Context(), item); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update news item")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/news/{id} (admin only)
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.userRepo); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news id")
		return
	}

	if err := h.newsRepo.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusNotFound, "News item not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// requireAdmin resolves the authenticated user and rejects non-admins,
// writing the error response itself
func requireAdmin(w http.ResponseWriter, r *http.Request, userRepo *repository.UserRepository) (*domain.User, bool) {
	userID := middleware.GetUserID(r.Context())
	if userID == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	user, err := userRepo.FindByID(r.Context(), *userID)
	if err != nil || user == nil {
		respondError(w, http.StatusUnauthorized, "Unknown user")
		return nil, false
	}
	if !user.IsAdmin {
		respondError(w, http.StatusForbidden, "Admin access required")
		return nil, false
	}

	return user, true
}
