package services

import (
	"errors"

	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/model/rider"
)

// ErrRiderNotFound is returned when no suitable rider is available for an
// order. This occurs when either no riders are provided or none of them
// can claim the order because they are off shift or already carrying one.
var ErrRiderNotFound = errors.New("rider not found")

// AssignmentPolicy is a domain service that gates rider-to-order claiming.
// It preserves two invariants:
//   - an order is claimed by at most one rider, exactly once, only from
//     Confirmed status
//   - a rider holds at most one active order at a time
//
// The policy decides and applies the logical claim; it does not make the
// claim atomic against concurrent riders. That is the persistence layer's
// contract: the claim must be written as a single conditional update
// (order still Confirmed, rider column still empty) and a result of zero
// affected rows treated as a lost race, never retried blindly.
//
// Example usage:
//
//	policy := NewAssignmentPolicy()
//	if !policy.CanClaim(order, rider) {
//	    // not an error: try another order or another rider
//	    return
//	}
//	if err := policy.ApplyClaim(order, rider); err != nil {
//	    return err
//	}
//	// persist both aggregates under conditional writes
type AssignmentPolicy struct{}

// NewAssignmentPolicy creates a new AssignmentPolicy instance.
func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// CanClaim reports whether the rider may claim the order right now:
// the order is Confirmed and unassigned, and the rider is available with
// no active order. A false result is a normal "unavailable" signal, not
// an error; callers move on to another order or rider.
//
// Invalid (improperly constructed) aggregates also report false.
func (p AssignmentPolicy) CanClaim(o *order.Order, r *rider.Rider) bool {
	if o.Validate() != nil || r.Validate() != nil {
		return false
	}

	return o.Status() == order.Confirmed &&
		o.Rider() == nil &&
		r.IsFree()
}

// ApplyClaim executes the logical claim: the order gets the rider and
// advances to Preparing, and the rider becomes busy with the order.
// Call it only after CanClaim returns true; it re-validates the
// preconditions and fails rather than producing a half-applied claim.
func (p AssignmentPolicy) ApplyClaim(o *order.Order, r *rider.Rider) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	if err := r.ClaimOrder(o.ID()); err != nil {
		return err
	}

	if err := o.AssignRider(r.ID()); err != nil {
		// Undo the rider side so a rejected claim leaves both aggregates
		// exactly as they were.
		_ = r.ReleaseOrder(o.ID())
		return err
	}

	return nil
}

// Dispatch finds the first rider who can claim the order and applies the
// claim. Riders are considered in the given slice order; the caller
// controls any priority by pre-sorting.
//
// Returns:
//   - *rider.Rider: the rider the order was assigned to
//   - error: ErrRiderNotFound when no provided rider can claim the order,
//     or a validation/claim error
func (p AssignmentPolicy) Dispatch(o *order.Order, riders []*rider.Rider) (*rider.Rider, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if !p.CanClaim(o, r) {
			continue
		}

		if err := p.ApplyClaim(o, r); err != nil {
			return nil, err
		}

		return r, nil
	}

	return nil, ErrRiderNotFound
}
