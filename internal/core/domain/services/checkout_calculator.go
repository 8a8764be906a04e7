package services

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
)

// ErrEmptyCart is returned when computing totals for a cart with no lines.
// An empty cart is a caller-level precondition failure: checkout must not
// be submitted without items.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutCalculator is a domain service that derives a deterministic,
// auditable price breakdown from cart lines and the platform fee policy.
//
// The computation:
//
//	itemCount  = sum of line quantities
//	subtotal   = sum of (unitPrice x quantity), exact in minor units
//	serviceFee = min(base + perItem x itemCount, cap)
//	vat        = subtotal x vatRate, rounded half-up once
//	total      = subtotal + serviceFee + vat + deliveryFee
//
// The VAT rounding happens exactly once, on the subtotal product, never
// per line, so repeated computations can never drift apart. Compute is a
// pure function: identical inputs yield identical Totals, which checkout
// retries and audit reconciliation rely on.
//
// The calculator is vendor-agnostic. A cart spanning vendors must be
// partitioned by the caller into one Compute call per vendor.
//
// Example usage:
//
//	calculator := NewCheckoutCalculator()
//	totals, err := calculator.Compute(lines, feeConfig)
//	if errors.Is(err, ErrEmptyCart) {
//	    // block checkout submission
//	}
type CheckoutCalculator struct{}

// NewCheckoutCalculator creates a new CheckoutCalculator instance.
func NewCheckoutCalculator() CheckoutCalculator {
	return CheckoutCalculator{}
}

// Compute derives the price breakdown for the given lines under the given
// fee policy.
//
// Parameters:
//   - lines: at least one validated cart line
//   - cfg: the platform fee policy (must be constructed via NewFeeConfig)
//
// Returns:
//   - order.Totals: the complete breakdown, all fields in minor units
//   - error: ErrEmptyCart for an empty cart, or a validation error for
//     improperly constructed inputs
func (c CheckoutCalculator) Compute(lines []order.Item, cfg FeeConfig) (order.Totals, error) {
	if err := cfg.Validate(); err != nil {
		return order.Totals{}, err
	}

	if len(lines) == 0 {
		return order.Totals{}, ErrEmptyCart
	}

	var itemCount int
	subtotal := kernel.Money{}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return order.Totals{}, err
		}
		itemCount += line.Quantity()
		subtotal = subtotal.Add(line.LineTotal())
	}

	serviceFee := cfg.BaseServiceFee().
		Add(cfg.PerItemServiceFee().MulInt(int64(itemCount))).
		Min(cfg.ServiceFeeCap())

	vat := subtotal.MulFraction(cfg.VATRate())

	return order.NewTotals(itemCount, subtotal, serviceFee, vat, cfg.DeliveryFee()), nil
}
