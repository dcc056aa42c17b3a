// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the station workflow.
//
// # Available Jobs
//
// 1. PendingBypassReminderJob - Runs every minute to surface bypass requests
// that have been waiting for an admin decision for longer than the configured
// age.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingBypassHandler, 15*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job is read-only: query failures are logged and the run is
// skipped. Stale requests are reported on every run until they are resolved.
package jobs
