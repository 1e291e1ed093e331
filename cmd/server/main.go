package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	httpapi "estate-console/internal/api/http"
	"estate-console/internal/backend"
	"estate-console/internal/config"
	"estate-console/internal/jobs"
	"estate-console/internal/logger"
	"estate-console/internal/notify"
	"estate-console/internal/scheduler"
	"estate-console/internal/service"
	"estate-console/internal/session"
	"estate-console/internal/store"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Estate Console...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Backend configuration", "base_url", cfg.Backend.BaseURL, "timeout_seconds", cfg.Backend.TimeoutSeconds)

	// Initialize session token store
	tokens := session.NewFileStore(cfg.Session.TokenFile, cfg.Session.StorageKey)

	// Initialize backend client
	client := backend.New(
		cfg.Backend.BaseURL,
		tokens,
		backend.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second),
		backend.WithRetries(cfg.Backend.MaxRetries, time.Duration(cfg.Backend.RetryBackoffMS)*time.Millisecond),
	)

	// Initialize state store
	state := store.New()

	// Initialize services
	authSvc := service.NewAuthService(client, tokens, state)
	propertySvc := service.NewPropertyService(client, state)
	adminSvc := service.NewAdminService(client, state)
	contractSvc := service.NewContractService(client, state)

	// Initialize notifier
	var notifier notify.Notifier
	if cfg.Email.SendGridAPIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
		logger.Info("Using SendGrid notifier", "from", cfg.Email.FromEmail)
	} else {
		notifier = notify.LogNotifier{}
		logger.Info("No SendGrid API key configured, renewal digests will be logged only")
	}

	// Initialize job runner and scheduler
	jobServices := &jobs.Services{
		Property: propertySvc,
		Admin:    adminSvc,
		Contract: contractSvc,
	}
	jobRunner := jobs.NewJobRunner(jobServices, notifier, state, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Warm the cache once at startup so the read surface is not empty until
	// the first scheduled refresh.
	go jobRunner.RefreshPropertyCache()

	// Set up HTTP server
	router := mux.NewRouter()
	handler := httpapi.NewConsoleHandler(propertySvc, adminSvc, contractSvc, state, cfg)
	httpapi.RegisterRoutes(router, handler)
	httpapi.RegisterAuthRoutes(router, httpapi.NewAuthHandler(authSvc))

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
