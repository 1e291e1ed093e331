package jobs

import (
	"context"
	"time"

	"estate-console/internal/alerts"
	"estate-console/internal/logger"
)

// RefreshPropertyCache reloads rental apartments and sale listings from the
// backend so alert scans and the read surface work from current data.
func (jr *JobRunner) RefreshPropertyCache() {
	jr.runWithRecovery("RefreshPropertyCache", func() {
		ctx := context.Background()

		if _, err := jr.services.Property.RefreshApartments(ctx); err != nil {
			logger.Error("Failed to refresh rental apartments", "error", err)
			return
		}
		if _, err := jr.services.Property.RefreshSales(ctx); err != nil {
			logger.Error("Failed to refresh sale listings", "error", err)
		}
	})
}

// ScanRenewalAlerts computes renewal alerts across the cached apartments and
// emails one digest to every active admin. The alert math is pure; a fresh
// cache comes from RefreshPropertyCache running first.
func (jr *JobRunner) ScanRenewalAlerts() {
	jr.runWithRecovery("ScanRenewalAlerts", func() {
		items := jr.services.Property.RenewalAlerts(time.Now())
		if len(items) == 0 {
			logger.Info("No studios need renewal attention")
			return
		}

		highCount := 0
		for _, item := range items {
			if item.Priority == alerts.PriorityHigh {
				highCount++
			}
		}
		logger.Info("Found studios needing renewal",
			"count", len(items), "high_priority", highCount)

		admins := jr.state.Admins.All()
		sent := 0
		for _, admin := range admins {
			if !admin.IsActive || admin.Email == "" {
				continue
			}
			if err := jr.notifier.SendRenewalDigest(admin.Email, admin.FullName, items); err != nil {
				logger.Error("Failed to send renewal digest",
					"admin_email", admin.Email, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent renewal digests", "sent", sent, "admins", len(admins))
	})
}
