package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	riderDispatchJob *RiderDispatchJob
	orderExpiryJob   *OrderExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchRiderHandler commands.DispatchRiderCommandHandler,
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	orderMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		riderDispatchJob: NewRiderDispatchJob(dispatchRiderHandler, logger),
		orderExpiryJob:   NewOrderExpiryJob(cancelStaleOrdersHandler, orderMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.riderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider dispatch job: %w", err)
	}

	if err := jm.orderExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.riderDispatchJob.Stop()
		return fmt.Errorf("failed to start order expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderExpiryJob.Stop()
	jm.riderDispatchJob.Stop()
}
