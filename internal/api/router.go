package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/api/handlers"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/api/middleware"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/repository"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/schema"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	authService *service.AuthService,
	csrfService *service.CSRFService,
	rateLimitService *service.RateLimitService,
	documentService *service.DocumentService,
	catalog *schema.Catalog,
	userRepo *repository.UserRepository,
	newsRepo *repository.NewsRepository,
	investmentRepo *repository.InvestmentRepository,
	dailyLimit, monthlyLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// Health checks (no auth required)
	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready)

	// Create handlers
	authHandler := handlers.NewAuthHandler(authService, csrfService)
	documentHandler := handlers.NewDocumentHandler(documentService, catalog)
	profileHandler := handlers.NewProfileHandler(userRepo)
	newsHandler := handlers.NewNewsHandler(newsRepo, userRepo)
	investmentHandler := handlers.NewInvestmentHandler(investmentRepo, userRepo)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	csrfMiddleware := middleware.NewCSRFMiddleware(csrfService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimitService, dailyLimit, monthlyLimit)

	// Public endpoints (no auth required)
	r.Post("/api/v1/auth/register", authHandler.Register)
	r.Post("/api/v1/auth/login", authHandler.Login)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Use(rateLimitMiddleware.RateLimit)

		// CSRF token issuance precedes CSRF protection
		r.Get("/api/csrf-token", authHandler.CSRFToken)

		r.Get("/api/v1/documents/catalog", documentHandler.Catalog)
		r.Get("/api/v1/news", newsHandler.List)
		r.Get("/api/v1/news/{id}", newsHandler.Get)
		r.Get("/api/v1/investments", investmentHandler.List)
		r.Get("/api/v1/investments/{id}", investmentHandler.Get)
		r.Get("/api/v1/profile/company", profileHandler.GetCompany)

		// Mutating routes additionally carry the CSRF check
		r.Group(func(r chi.Router) {
			r.Use(csrfMiddleware.Protect)

			r.Post("/api/documents/generate/{key}", documentHandler.Generate)
			// Legacy alias kept for older clients
			r.Post("/api/auto-documents/{key}", documentHandler.Generate)

			r.Patch("/api/v1/profile/company", profileHandler.UpdateCompany)

			r.Post("/api/v1/news", newsHandler.Create)
			r.Put("/api/v1/news/{id}", newsHandler.Update)
			r.Delete("/api/v1/news/{id}", newsHandler.Delete)

			r.Post("/api/v1/investments", investmentHandler.Create)
			r.Put("/api/v1/investments/{id}", investmentHandler.Update)
			r.Delete("/api/v1/investments/{id}", investmentHandler.Delete)
		})
	})

	return r
}
