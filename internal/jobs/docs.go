// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfilment.
//
// # Available Jobs
//
// 1. RiderDispatchJob - Runs every second to assign confirmed orders to available riders
// 2. OrderExpiryJob - Runs every minute to cancel pending orders the vendor never confirmed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, expiryHandler, 15*time.Minute, logger)
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
// The dispatch job uses the cron expression "* * * * * *" (every second) so
// confirmed orders reach a rider quickly. The expiry job uses "0 * * * * *"
// (every minute) since order staleness is measured in minutes.
//
// # Error Handling
//
// - Dispatch job ignores expected business errors (no orders, no riders, lost race)
// - Expiry job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
