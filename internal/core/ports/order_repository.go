package ports

import (
	"context"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status and rider assignment state.
//
// Lifecycle writes are conditional: Update and ClaimForRider only apply
// when the stored row still matches the state the caller read. This is the
// storage half of the single-writer guarantees the aggregates describe.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditional
	// on the stored row still being in expectedStatus. A row that moved on
	// since the caller read it is reported as errs.ErrVersionIsInvalid,
	// never silently overwritten.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, totals, and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstUnassignedConfirmed retrieves the oldest Confirmed order with
	// no rider assigned. Used by the dispatch workflow to find claimable work.
	GetFirstUnassignedConfirmed(ctx context.Context) (*order.Order, error)

	// GetAllActive retrieves all orders in a non-terminal status,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingCreatedBefore retrieves Pending orders placed before the
	// cutoff. Used by the expiry workflow to cancel orders the vendor never
	// confirmed.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// ClaimForRider writes the rider claim as one conditional update: the
	// row must still be Confirmed with no rider. Exactly one of any number
	// of concurrent claimants succeeds; losers get errs.ErrVersionIsInvalid
	// and must treat the order as taken.
	ClaimForRider(ctx context.Context, aggregate *order.Order) error
}
