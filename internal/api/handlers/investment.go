package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/repository"
)

// InvestmentHandler handles investment-listing HTTP requests
type InvestmentHandler struct {
	investmentRepo *repository.InvestmentRepository
	userRepo       *repository.UserRepository
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentRepo *repository.InvestmentRepository, userRepo *repository.UserRepository) *InvestmentHandler {
	return &InvestmentHandler{
		investmentRepo: investmentRepo,
		userRepo:       userRepo,
	}
}

// List handles GET /api/v1/investments
func (h *InvestmentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.investmentRepo.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list investments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"investments": items})
}

// Get handles GET /api/v1/investments/{id}
func (h *InvestmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid investment id")
		return
	}

	item, err := h.investmentRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load investment")
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "Investment not found")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Create handles POST /api/v1/investments (admin only)
func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.userRepo)
	if !ok {
		return
	}

	var req domain.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" {
		respondError(w, http.StatusBadRequest, "title and description are required")
		return
	}

	now := time.Now()
	item := &domain.Investment{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Sector:      req.Sector,
		Amount:      req.Amount,
		Deadline:    req.Deadline,
		Author:      admin.FullName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.investmentRepo.Create(r.Context(), item); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create investment")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/v1/investments/{id} (admin only)
func (h *InvestmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.userRepo); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid investment id")
		return
	}

	var req domain.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.investmentRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load investment")
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "Investment not found")
		return
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Sector = req.Sector
	item.Amount = req.Amount
	item.Deadline = req.Deadline
	item.UpdatedAt = time.Now()

	if err := h.investmentRepo.Update(r.Context(), item); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update investment")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/investments/{id} (admin only)
func (h *InvestmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.userRepo); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid investment id")
		return
	}

	if err := h.investmentRepo.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusNotFound, "Investment not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
