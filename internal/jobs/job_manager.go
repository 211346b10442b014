package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ridehail/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleRideCancellationJob *StaleRideCancellationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleRidesHandler commands.CancelStaleRidesCommandHandler,
	staleRideMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleRideCancellationJob: NewStaleRideCancellationJob(cancelStaleRidesHandler, staleRideMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleRideCancellationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale ride cancellation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleRideCancellationJob.Stop()
}
