// Package jobs provides scheduled background tasks for the ride hailing system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ride hailing service.
//
// # Available Jobs
//
// 1. StaleRideCancellationJob - Runs every minute to cancel Created rides that
// no driver accepted within the configured max age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleRidesHandler, 10*time.Minute, logger)
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
// The sweep uses the cron expression "0 * * * * *" which means it runs at the
// start of every minute. Stale rides are cancelled in a single transaction and
// the corresponding cancellation events are published after commit.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts report the error to the caller
package jobs
