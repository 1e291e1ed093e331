package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'refresh-property-cache', 'scan-renewal-alerts', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Estate Console Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize session token store
	tokens := session.NewFileStore(cfg.Session.TokenFile, cfg.Session.StorageKey)

	// Initialize backend client
	client := backend.New(
		cfg.Backend.BaseURL,
		tokens,
		backend.WithTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second),
		backend.WithRetries(cfg.Backend.MaxRetries, time.Duration(cfg.Backend.RetryBackoffMS)*time.Millisecond),
	)

	// Initialize state store and services
	state := store.New()
	propertySvc := service.NewPropertyService(client, state)
	adminSvc := service.NewAdminService(client, state)
	contractSvc := service.NewContractService(client, state)

	// Initialize notifier
	var notifier notify.Notifier
	if cfg.Email.SendGridAPIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		notifier = notify.LogNotifier{}
		logger.Info("No SendGrid API key configured, renewal digests will be logged only")
	}

	jobServices := &jobs.Services{
		Property: propertySvc,
		Admin:    adminSvc,
		Contract: contractSvc,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, notifier, state, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "refresh-property-cache":
		jobRunner.RefreshPropertyCache()
	case "scan-renewal-alerts":
		// A fresh cache first, otherwise the scan sees nothing.
		jobRunner.RefreshPropertyCache()
		jobRunner.ScanRenewalAlerts()
	case "all":
		jobRunner.RunAll()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - refresh-property-cache\n")
		fmt.Printf("  - scan-renewal-alerts\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
