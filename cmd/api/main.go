package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-boutique-backend/config"
	_ "go-boutique-backend/docs" // Important for Swagger
	v1 "go-boutique-backend/internal/delivery/http/v1"
	"go-boutique-backend/internal/domain"
	"go-boutique-backend/internal/usecase"
	"go-boutique-backend/pkg/captcha"
	"go-boutique-backend/pkg/email"
	"go-boutique-backend/pkg/logger"
)

// @title           Boutique Lead Intake API
// @version         1.0
// @description     Form-submission intake for the boutique marketing site: challenge verification and email relay.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config (fails fast on missing credentials or mailboxes)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting lead intake backend", "port", cfg.Port)

	// 3. Setup outbound collaborators
	verifier := captcha.New(captcha.Config{
		Secret:   cfg.TurnstileSecret,
		Endpoint: cfg.TurnstileEndpoint,
		Timeout:  cfg.VerifyTimeout,
	})

	mailer := email.NewService(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Error("Email dispatcher not configured")
		os.Exit(1)
	}

	// 4. Setup the intake workflow
	routes := domain.MailboxRoutes{
		Default: cfg.MailboxDefault,
		Overrides: map[domain.Category]string{
			domain.CategoryPromo:       cfg.MailboxPromo,
			domain.CategoryAppointment: cfg.MailboxAppointments,
			domain.CategoryEvent:       cfg.MailboxEvents,
			domain.CategoryReview:      cfg.MailboxReviews,
		},
	}
	leadUC := usecase.NewLeadUsecase(verifier, mailer, routes, cfg.FromName)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		LeadUC: leadUC,
		Config: cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
