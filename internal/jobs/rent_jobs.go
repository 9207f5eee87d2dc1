package jobs

import (
	"context"

	"toolrent-backend/internal/logger"
)

// ReportOverdueRents finds unreturned rentals past their finish date, logs
// them, and mails the nightly summary to the shop admin.
func (jr *JobRunner) ReportOverdueRents() {
	jr.runWithRecovery("ReportOverdueRents", func() {
		ctx := context.Background()

		overdue, err := jr.services.Rent.ListOverdueUnreturned(ctx)
		if err != nil {
			logger.Error("Failed to list overdue rents", "error", err)
			return
		}

		if len(overdue) == 0 {
			logger.Info("No overdue rents found")
			return
		}

		logger.Info("Found overdue rents", "count", len(overdue))
		for _, rent := range overdue {
			logger.Debug("Overdue rent",
				"rent_id", rent.ID,
				"client_id", rent.ClientID,
				"tool_id", rent.ToolID,
				"finish_date", rent.FinishDate.Format("2006-01-02"))
		}

		adminEmail := jr.config.SMTP.AdminEmail
		if adminEmail == "" {
			logger.Warn("No admin email configured, skipping overdue summary email")
			return
		}

		if err := jr.services.Email.SendOverdueRentSummary(ctx, adminEmail, overdue); err != nil {
			logger.Error("Failed to send overdue rent summary", "error", err, "to", adminEmail)
			return
		}
		logger.Info("Sent overdue rent summary", "to", adminEmail, "count", len(overdue))
	})
}
