// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the marketplace. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - CheckoutCalculator: derives the auditable price breakdown from cart
//     lines and the platform fee policy
//   - AssignmentPolicy: gates rider-to-order claiming, preserving the
//     one-rider-per-order and one-active-order-per-rider invariants
//   - FeeConfig: the process-wide fee computation policy
//
// All services here are pure and synchronous: no I/O, no clocks, no shared
// mutable state. Concurrency safety for their results is the persistence
// layer's contract (conditional updates keyed on the state that was read).
package services
