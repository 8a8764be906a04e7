package order

import (
	"errors"
	"fmt"

	"foodmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> PickedUp ──> Delivered
//	   │            │             │           │          │
//	   └────────────┴─────────────┴───────────┴──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Requesting the state an order is already in is always accepted as a
// no-op, so retried status updates are idempotent.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created at checkout.
	// The vendor has not yet confirmed the order.
	Pending

	// Confirmed indicates the vendor has accepted the order.
	// Orders in this status are waiting to be claimed by a rider.
	Confirmed

	// Preparing indicates a rider has claimed the order and the vendor
	// is preparing it. Entering this status requires a rider assignment.
	Preparing

	// Ready indicates the vendor has finished preparing and the order
	// is waiting for rider pickup.
	Ready

	// PickedUp indicates the rider has collected the order and is
	// delivering it.
	PickedUp

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// Reachable from every non-terminal state; final.
	Cancelled
)

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
// Use errors.Is(err, ErrInvalidTransition) to classify rejected transitions.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// InvalidTransitionError reports a status change request that the state
// machine rejects. It carries both sides of the rejected transition so
// callers can surface a precise message ("cannot move from X to Y").
type InvalidTransitionError struct {
	Current   Status
	Requested Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%v: cannot move from %s to %s", ErrInvalidTransition, e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getAllowedTransitions returns, for each valid status, the set of statuses
// it may move to. Same-state requests are handled separately as idempotent
// no-ops and are not listed here.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {PickedUp, Cancelled},
		PickedUp:  {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the seven members of the lifecycle enum.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is final.
// Delivered and Cancelled orders accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the state machine allows moving from s
// to requested. A same-state request is always allowed for valid statuses.
// Invalid statuses on either side always report false.
func (s Status) CanTransitionTo(requested Status) bool {
	if s.Validate() != nil || requested.Validate() != nil {
		return false
	}
	if s == requested {
		return true
	}
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// Transition applies a requested status change and returns the resulting status.
//
// Rules:
//   - Both current and requested must be valid enum members; otherwise a
//     ValueIsInvalidError is returned and the caller must treat the input
//     as corrupt rather than coerce it.
//   - Requesting the current status is accepted as a no-op for every valid
//     state, including terminal ones, so retried updates stay safe.
//   - Any other pair outside the allowed transition set is rejected with
//     an InvalidTransitionError carrying both statuses.
//
// Transition is a pure function of (current, requested): it performs no
// I/O, reads no clock, and never mutates the receiver. Serializing
// concurrent transitions on the same order is the persistence layer's
// job, via a conditional update keyed on the current status.
//
// Example:
//
//	newStatus, err := currentStatus.Transition(order.Confirmed)
//	if err != nil {
//	    // Rejected: surface the error, leave persisted state untouched
//	}
func (s Status) Transition(requested Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := requested.Validate(); err != nil {
		return Unknown, err
	}

	if s == requested {
		return s, nil
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == requested {
			return requested, nil
		}
	}

	return Unknown, &InvalidTransitionError{Current: s, Requested: requested}
}

// StatusFromString maps a lifecycle name ("Pending", "Confirmed", ...) to
// its Status value. Returns an error for names outside the enum. Used when
// parsing status values from API requests.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}
