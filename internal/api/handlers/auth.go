package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/api/middleware"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	csrfService *service.CSRFService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, csrfService *service.CSRFService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		csrfService: csrfService,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	tokenResp, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "Email is already registered")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	respondJSON(w, http.StatusCreated, tokenResp)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	tokenResp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, tokenResp)
}

// CSRFToken handles GET /api/csrf-token. It issues a fresh token for the
// authenticated user, mirrored in a cookie for browser clients.
func (h *AuthHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.csrfService.Issue(r.Context(), *userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to issue CSRF token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, map[string]string{"csrfToken": token})
}
