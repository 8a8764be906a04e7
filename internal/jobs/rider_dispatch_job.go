package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderDispatchJob manages the scheduled dispatch of riders to orders.
// Runs every second to match confirmed orders with available riders.
type RiderDispatchJob struct {
	handler commands.DispatchRiderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRiderDispatchJob creates a new job for dispatching riders.
// Uses DispatchRiderCommandHandler to process rider dispatches every second.
func NewRiderDispatchJob(handler commands.DispatchRiderCommandHandler, logger *slog.Logger) *RiderDispatchJob {
	return &RiderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rider_dispatch_job"),
	}
}

// Start begins the rider dispatch job to run every second.
func (j *RiderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchRiderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderToDispatch) &&
				!errors.Is(err, commands.ErrNoRidersAvailable) &&
				!errors.Is(err, commands.ErrDispatchRaceIsLost) {
				j.logger.ErrorContext(ctx, "Rider dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider dispatch job started (running every second)")
	return nil
}

// Stop stops the rider dispatch job.
func (j *RiderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rider dispatch job stopped")
}
