package jobs

import (
	"context"
	"log/slog"
	"time"

	"ridehail/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleRideCancellationJob periodically cancels rides that no driver accepted.
// Runs every minute and sweeps all Created rides older than the configured max age.
type StaleRideCancellationJob struct {
	handler commands.CancelStaleRidesCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleRideCancellationJob creates a new job for sweeping stale rides.
// maxAge controls how long a ride may stay in Created status before the sweep
// cancels it on behalf of the system actor.
func NewStaleRideCancellationJob(
	handler commands.CancelStaleRidesCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleRideCancellationJob {
	return &StaleRideCancellationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_ride_cancellation_job"),
	}
}

// Start begins the stale ride sweep to run every minute.
func (j *StaleRideCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleRidesCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale ride cancellation job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale ride cancellation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale ride cancellation job started (running every minute)")
	return nil
}

// Stop stops the stale ride sweep.
func (j *StaleRideCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale ride cancellation job stopped")
}
