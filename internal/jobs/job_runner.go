package jobs

import (
	"estate-console/internal/config"
	"estate-console/internal/logger"
	"estate-console/internal/notify"
	"estate-console/internal/service"
	"estate-console/internal/store"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	notifier notify.Notifier
	state    *store.Store
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Property service.PropertyService
	Admin    service.AdminService
	Contract service.ContractService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(services *Services, notifier notify.Notifier, state *store.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		services: services,
		notifier: notifier,
		state:    state,
		config:   cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every scheduled job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.RefreshPropertyCache()
	jr.ScanRenewalAlerts()
}
