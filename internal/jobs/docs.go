// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required around the order lifecycle.
//
// # Available Jobs
//
// 1. OverdueDelayWatchdogJob - Runs every minute to flag delayed orders whose promised readiness time has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOverdueDelayedOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The watchdog uses the cron expression "* * * * *" which means it runs every
// minute. Overdue orders are a human-attention concern, so a minute of lag is
// acceptable and keeps the query load negligible.
//
// # Error Handling
//
// - Query failures are logged and the tick is skipped; the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
