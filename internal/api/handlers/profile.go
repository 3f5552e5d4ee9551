package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/api/middleware"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/repository"
)

// ProfileHandler handles company-profile HTTP requests
type ProfileHandler struct {
	userRepo *repository.UserRepository
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userRepo *repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepo: userRepo,
	}
}

// GetCompany handles GET /api/v1/profile/company
func (h *ProfileHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), *userID)
	if err != nil || user == nil {
		respondError(w, http.StatusUnauthorized, "Unknown user")
		return
	}

	respondJSON(w, http.StatusOK, user.CompanyProfile)
}

// UpdateCompany handles PATCH /api/v1/profile/company. Only the fields
// present in the body are changed.
func (h *ProfileHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req domain.UpdateCompanyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), *userID)
	if err != nil || user == nil {
		respondError(w, http.StatusUnauthorized, "Unknown user")
		return
	}

	profile := user.CompanyProfile
	applyProfileUpdate(&profile, &req)

	if err := h.userRepo.UpdateCompanyProfile(r.Context(), *userID, profile); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update company profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func applyProfileUpdate(profile *domain.CompanyProfile, req *domain.UpdateCompanyProfileRequest) {
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.TaxNumber != nil {
		profile.TaxNumber = *req.TaxNumber
	}
	if req.RegistrationNumber != nil {
		profile.RegistrationNumber = *req.RegistrationNumber
	}
	if req.Manager != nil {
		profile.Manager = *req.Manager
	}
	if req.ActivityDescription != nil {
		profile.ActivityDescription = *req.ActivityDescription
	}
}
