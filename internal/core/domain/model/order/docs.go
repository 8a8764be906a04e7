// Package order provides domain entities and business logic for order
// management in the marketplace. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, price
//     breakdown, rider assignment, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentStatus: The externally settled payment outcome
//   - Item: A cart line with a price snapshotted at add-to-cart time
//   - Totals: The auditable price breakdown computed at checkout
//
// Key business rules:
//   - Order status follows a defined workflow:
//     Pending -> Confirmed -> Preparing -> Ready -> PickedUp -> Delivered,
//     with cancellation possible from every non-terminal state
//   - Requesting an order's current status again is an idempotent no-op
//   - A rider is assigned exactly once, at the Confirmed -> Preparing
//     boundary, and is required from Preparing onwards
//   - The price breakdown is fixed at creation and cross-checked against
//     the order lines
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
