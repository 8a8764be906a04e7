// Package kernel provides shared value objects used across the marketplace
// domain model. These are the building blocks the aggregates are made of.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//   - Money: A non-negative monetary amount in currency minor units with
//     exact integer arithmetic and a single round-half-up rule for
//     fraction-based charges
//
// Value objects in this package are immutable, compare by value, and are
// only constructable through their factory functions. The zero value of
// each type is invalid and fails validation, which prevents accidental use
// of uninitialized identifiers or amounts.
package kernel
