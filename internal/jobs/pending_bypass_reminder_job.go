package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingBypassReminderJob surfaces bypass requests that have been waiting
// for an admin decision for too long. Runs every minute and logs stale
// requests so the admin channel can pick them up.
type PendingBypassReminderJob struct {
	handler queries.GetPendingBypassRequestsQueryHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingBypassReminderJob creates a job that reminds about stale bypass
// requests. Requests pending longer than maxAge are reported on each run.
func NewPendingBypassReminderJob(
	handler queries.GetPendingBypassRequestsQueryHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *PendingBypassReminderJob {
	return &PendingBypassReminderJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_bypass_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *PendingBypassReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingBypassRequestsQuery()

		pending, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending bypass reminder job failed", "error", err)
			return
		}

		cutoff := time.Now().UTC().Add(-j.maxAge)
		for _, request := range pending {
			if request.RequestedAt.After(cutoff) {
				continue
			}

			j.logger.WarnContext(ctx, "Bypass request awaiting decision",
				"bypass_request_id", request.ID.String(),
				"order_number", request.OrderNumber,
				"station", request.Station.QueryValue(),
				"reason", request.Reason,
				"pending_for", time.Since(request.RequestedAt).Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending bypass reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingBypassReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending bypass reminder job stopped")
}
