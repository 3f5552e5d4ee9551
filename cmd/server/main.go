package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/api"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/config"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/docgen"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/repository"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/schema"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the bundled document catalog
	catalog, err := schema.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load document catalog: %v", err)
	}

	// Initialize repositories
	userRepo, err := repository.NewUserRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer userRepo.Close()

	// Other repositories share the same connection
	db := userRepo.GetDB()
	newsRepo := repository.NewNewsRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	csrfService, err := service.NewCSRFService(cfg.RedisURL, cfg.CSRFTokenTTL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer csrfService.Close()
	rateLimitService := service.NewRateLimitService(csrfService.Client())
	documentService := service.NewDocumentService(userRepo, docgen.NewRegistry())

	// Set up router
	router := api.NewRouter(
		authService,
		csrfService,
		rateLimitService,
		documentService,
		catalog,
		userRepo,
		newsRepo,
		investmentRepo,
		cfg.DefaultDailyLimit,
		cfg.DefaultMonthlyLimit,
	)

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting Nexa server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
