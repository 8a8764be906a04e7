package order

import (
	"errors"
	"fmt"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemsAreRequired is returned when attempting to create an order without lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrTotalsMismatch is returned when the supplied price breakdown does not
	// match the order lines it claims to describe.
	ErrTotalsMismatch = errors.New("totals do not match order items")

	// ErrRiderAlreadyAssigned is returned when assigning a rider to an order
	// that already has one. Each order is claimed by exactly one rider,
	// exactly once.
	ErrRiderAlreadyAssigned = errors.New("order already has a rider assigned")

	// ErrOrderNotClaimable is returned when assigning a rider to an order that
	// is not in Confirmed status.
	ErrOrderNotClaimable = errors.New("only confirmed orders can be claimed by a rider")

	// ErrPaymentAlreadySettled is returned when recording a payment outcome on
	// an order whose payment is no longer pending.
	ErrPaymentAlreadySettled = errors.New("payment outcome already recorded")
)

// Order represents one customer purchase from one vendor. It is the aggregate
// root that manages the order lifecycle from checkout through rider delivery.
//
// Order follows these invariants:
//   - The price breakdown is computed at checkout and immutable thereafter
//   - Status transitions follow the state machine defined by Status
//   - A rider is assigned exactly once, at the Confirmed -> Preparing
//     boundary, and is required for every status from Preparing onwards
//   - Terminal orders (Delivered, Cancelled) accept no further mutation
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Concurrent writers are serialized by
// the persistence layer's conditional updates, not by the aggregate itself.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// vendorID identifies the vendor preparing the order
	vendorID kernel.UUID

	// riderID is the assigned rider's ID (nil until the order is claimed)
	riderID *kernel.UUID

	// items are the cart lines snapshotted at checkout
	items []Item

	// totals is the immutable price breakdown computed at checkout
	totals Totals

	// status is the current state in the fulfillment lifecycle
	status Status

	// paymentStatus tracks the externally settled payment outcome
	paymentStatus PaymentStatus

	// createdAt is when the order was placed
	createdAt time.Time

	// updatedAt is when the order last changed
	updatedAt time.Time

	// estimatedDeliveryTime is the promised delivery time, if one was given
	estimatedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order at checkout. The order starts in Pending
// status with payment pending and no rider assigned.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the purchasing customer
//   - vendorID: the vendor all lines belong to
//   - items: at least one validated cart line
//   - totals: the price breakdown computed from exactly these items
//
// The supplied totals are cross-checked against the items: the item count
// and subtotal must match what the lines add up to. This pins the "total
// equals the checkout computation at creation time" invariant inside the
// aggregate instead of trusting the caller.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	items []Item,
	totals Totals,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setVendorID(vendorID),
		order.setItems(items),
		order.setTotals(totals),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order.createdAt = now
	order.updatedAt = now

	return order, nil
}

// RestoreOrder reconstructs an order from persisted state. Unlike NewOrder
// it accepts any valid lifecycle position, but it still verifies every
// cross-field invariant, so corrupt rows fail loudly instead of producing
// an impossible aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	riderID *kernel.UUID,
	items []Item,
	totals Totals,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	updatedAt time.Time,
	estimatedDeliveryTime *time.Time,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setVendorID(vendorID),
		order.setItems(items),
		order.setTotals(totals),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
	}

	if err := validateRiderConsistency(status, riderID != nil); err != nil {
		return nil, err
	}

	order.status = status
	order.paymentStatus = paymentStatus
	order.riderID = riderID
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	order.estimatedDeliveryTime = estimatedDeliveryTime

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the vendor's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// Rider returns the assigned rider's ID, or nil if the order is unclaimed.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Totals returns the immutable price breakdown.
func (o *Order) Totals() Totals {
	return o.totals
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the recorded payment outcome.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// EstimatedDeliveryTime returns the promised delivery time, or nil.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

// ChangeStatus applies a requested lifecycle transition.
//
// The transition itself is validated by the Status state machine: illegal
// moves return InvalidTransitionError, unknown statuses return a
// ValueIsInvalidError, and requesting the current status is a no-op that
// does not touch updatedAt.
//
// On top of the state machine, the aggregate enforces rider consistency:
// moving into Preparing, Ready, PickedUp, or Delivered requires a rider to
// be assigned. Entering Preparing happens through AssignRider, which folds
// the claim and the transition into one step.
//
// Cancellation keeps any assigned rider on the order for audit purposes;
// freeing the rider for new work is the caller's cross-aggregate concern.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.Transition(requested)
	if err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	if newStatus != Cancelled {
		if err = validateRiderConsistency(newStatus, o.riderID != nil); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AssignRider claims the order for a rider and advances the status to
// Preparing in one step, matching the marketplace flow where a rider
// accepting an order immediately starts the vendor preparing it.
//
// Preconditions:
//   - the order is in Confirmed status
//   - no rider is assigned yet
//   - the rider ID is valid
//
// This method defines the logical claim; protecting it against two riders
// claiming concurrently requires the persistence layer to write the claim
// conditionally (status still Confirmed, rider still unset) and to treat
// zero affected rows as a lost race.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.status != Confirmed {
		return ErrOrderNotClaimable
	}

	if o.riderID != nil {
		return ErrRiderAlreadyAssigned
	}

	newStatus, err := o.status.Transition(Preparing)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	o.touch()
	return nil
}

// MarkPaid records a successful charge reported by the payment gateway.
// Returns ErrPaymentAlreadySettled when the payment is not pending.
func (o *Order) MarkPaid() error {
	if o.paymentStatus != PaymentPending {
		return ErrPaymentAlreadySettled
	}

	o.paymentStatus = PaymentPaid
	o.touch()
	return nil
}

// MarkPaymentFailed records a failed charge reported by the payment gateway.
// Returns ErrPaymentAlreadySettled when the payment is not pending.
func (o *Order) MarkPaymentFailed() error {
	if o.paymentStatus != PaymentPending {
		return ErrPaymentAlreadySettled
	}

	o.paymentStatus = PaymentFailed
	o.touch()
	return nil
}

// ScheduleDelivery sets the estimated delivery time.
// Terminal orders cannot be rescheduled.
func (o *Order) ScheduleDelivery(eta time.Time) error {
	if o.status.IsTerminal() {
		return &InvalidTransitionError{Current: o.status, Requested: o.status}
	}

	o.estimatedDeliveryTime = &eta
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setTotals verifies the breakdown against the already-set items before
// accepting it. setItems must run first.
func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	var itemCount int
	subtotal := kernel.Money{}
	for _, item := range o.items {
		itemCount += item.Quantity()
		subtotal = subtotal.Add(item.LineTotal())
	}

	if totals.ItemCount() != itemCount || !totals.Subtotal().IsEqual(subtotal) {
		return fmt.Errorf("%w: items add up to count %d subtotal %s, totals claim count %d subtotal %s",
			ErrTotalsMismatch, itemCount, subtotal, totals.ItemCount(), totals.Subtotal())
	}

	o.totals = totals
	return nil
}

// validateRiderConsistency enforces which statuses require a rider.
// Pending and Confirmed orders must not have one; Preparing, Ready,
// PickedUp, and Delivered orders must. Cancelled orders may or may not
// retain a rider depending on when the cancellation happened.
func validateRiderConsistency(status Status, hasRider bool) error {
	switch status {
	case Pending, Confirmed:
		if hasRider {
			return errs.NewValueIsInvalidErrorWithCause(
				"rider assignment is invalid",
				fmt.Errorf("%s order must not have a rider", status),
			)
		}
	case Preparing, Ready, PickedUp, Delivered:
		if !hasRider {
			return errs.NewValueIsInvalidErrorWithCause(
				"rider assignment is invalid",
				fmt.Errorf("%s order must have a rider", status),
			)
		}
	case Cancelled, Unknown:
		// no constraint
	}
	return nil
}
