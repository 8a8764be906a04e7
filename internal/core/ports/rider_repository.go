// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
// Provides methods for storing, retrieving, and querying riders by their
// availability for new work.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	// The rider must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate, conditional
	// on the stored active order column still matching the state the caller
	// read. Two dispatchers booking the same rider concurrently therefore
	// cannot both win; the loser gets errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllFree retrieves all riders who can take a new order: on shift
	// and not carrying an active order.
	//
	// Business rules:
	//   - Riders off shift: excluded, regardless of load
	//   - Riders with an active order: excluded until the order reaches a
	//     terminal status and the rider is released
	//   - Everyone else: available for dispatch
	GetAllFree(ctx context.Context) ([]*rider.Rider, error)
}
