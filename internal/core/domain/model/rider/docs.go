// Package rider provides the Rider aggregate for the marketplace domain.
//
// A rider delivers orders from vendors to customers. The aggregate tracks
// identity, shift availability, and the single order a rider may carry at
// a time. The one-active-order-per-rider rule is enforced here and backed
// by a conditional write in the storage layer.
package rider
