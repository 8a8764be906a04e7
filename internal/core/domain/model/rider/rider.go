package rider

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")

	// ErrRiderIsNotAvailable is returned when an unavailable rider tries to claim an order.
	ErrRiderIsNotAvailable = errors.New("rider is not available")

	// ErrRiderIsBusy is returned when a rider already carrying an active order
	// tries to claim another one.
	ErrRiderIsBusy = errors.New("rider already has an active order")

	// ErrOrderNotHeld is returned when releasing an order the rider does not hold.
	ErrOrderNotHeld = errors.New("rider does not hold this order")
)

// Rider represents a delivery rider in the marketplace.
// It is an aggregate root that manages rider identity, availability, and
// the at-most-one-active-order invariant.
//
// Business rules:
//   - A rider must have a valid UUID and a non-empty name
//   - A rider may hold at most one non-terminal order at a time
//   - Only available riders can claim orders
//   - Claiming marks the rider busy; releasing frees them for new work
//
// The in-aggregate check is the first line of defense; the storage layer
// backs it with a conditional write on the rider's active order column so
// two dispatchers cannot book the same rider concurrently.
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID

	// name is the human-readable name of the rider
	name string

	// available reports whether the rider is on shift and taking work
	available bool

	// activeOrderID is the order the rider currently holds (nil if none)
	activeOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRider creates a new Rider with the specified parameters.
// New riders start available with no active order.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
func NewRider(id kernel.UUID, name string) (*Rider, error) {
	rider := &Rider{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setName(name),
	); err != nil {
		return nil, err
	}

	return rider, nil
}

// RestoreRider reconstructs a rider from persisted state.
func RestoreRider(id kernel.UUID, name string, available bool, activeOrderID *kernel.UUID) (*Rider, error) {
	rider := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setName(name),
	); err != nil {
		return nil, err
	}

	if activeOrderID != nil {
		if err := activeOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	rider.available = available
	rider.activeOrderID = activeOrderID
	return rider, nil
}

// Validate ensures the Rider was created through a factory method.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's human-readable name.
func (r *Rider) Name() string {
	return r.name
}

// IsAvailable reports whether the rider is on shift and taking work.
func (r *Rider) IsAvailable() bool {
	return r.available
}

// ActiveOrder returns the order the rider currently holds, or nil.
func (r *Rider) ActiveOrder() *kernel.UUID {
	return r.activeOrderID
}

// IsFree reports whether the rider can claim a new order:
// available and not carrying an active order.
func (r *Rider) IsFree() bool {
	return r.available && r.activeOrderID == nil
}

// SetAvailable toggles whether the rider is taking new work.
// Going off shift does not drop an order already in progress.
func (r *Rider) SetAvailable(available bool) {
	r.available = available
}

// ClaimOrder marks the rider as carrying the given order.
//
// Preconditions:
//   - the rider is available
//   - the rider holds no other active order
//
// A claim on an already-held order ID is accepted as an idempotent no-op.
func (r *Rider) ClaimOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if r.activeOrderID != nil {
		if r.activeOrderID.IsEqual(orderID) {
			return nil
		}
		return ErrRiderIsBusy
	}

	if !r.available {
		return ErrRiderIsNotAvailable
	}

	r.activeOrderID = &orderID
	return nil
}

// ReleaseOrder frees the rider after the held order reaches a terminal
// state (delivered or cancelled). Returns ErrOrderNotHeld when the rider
// does not hold the given order.
func (r *Rider) ReleaseOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if r.activeOrderID == nil || !r.activeOrderID.IsEqual(orderID) {
		return ErrOrderNotHeld
	}

	r.activeOrderID = nil
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
