package order

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

// ErrTotalsAreNotConstructed is returned when a Totals instance was not
// created through the NewTotals factory method.
var ErrTotalsAreNotConstructed = errors.New("Totals must be created via NewTotals constructor")

// Totals is the auditable price breakdown of an order. It is produced by
// the checkout calculation and snapshotted into the order at creation
// time; it never changes afterwards, so the amount charged can always be
// reconciled against the breakdown that produced it.
//
// All monetary fields share the same minor-unit representation and the
// grand total is by construction the sum of its parts.
type Totals struct {
	// itemCount is the total number of units across all lines
	itemCount int

	// subtotal is the sum of all line totals
	subtotal kernel.Money

	// serviceFee is the capped platform fee
	serviceFee kernel.Money

	// vat is the value-added tax on the subtotal
	vat kernel.Money

	// deliveryFee is the flat delivery charge
	deliveryFee kernel.Money

	// total is subtotal + serviceFee + vat + deliveryFee
	total kernel.Money

	guard guard.ConstructorGuard
}

// NewTotals assembles a price breakdown from its parts. The grand total is
// derived here rather than passed in, so a Totals value can never carry an
// inconsistent sum.
func NewTotals(itemCount int, subtotal, serviceFee, vat, deliveryFee kernel.Money) Totals {
	return Totals{
		itemCount:   itemCount,
		subtotal:    subtotal,
		serviceFee:  serviceFee,
		vat:         vat,
		deliveryFee: deliveryFee,
		total:       subtotal.Add(serviceFee).Add(vat).Add(deliveryFee),
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the Totals value was created through NewTotals.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// ItemCount returns the total number of units across all lines.
func (t Totals) ItemCount() int {
	return t.itemCount
}

// Subtotal returns the sum of all line totals.
func (t Totals) Subtotal() kernel.Money {
	return t.subtotal
}

// ServiceFee returns the capped platform fee.
func (t Totals) ServiceFee() kernel.Money {
	return t.serviceFee
}

// VAT returns the value-added tax charged on the subtotal.
func (t Totals) VAT() kernel.Money {
	return t.vat
}

// DeliveryFee returns the flat delivery charge.
func (t Totals) DeliveryFee() kernel.Money {
	return t.deliveryFee
}

// Total returns the grand total the customer is charged.
func (t Totals) Total() kernel.Money {
	return t.total
}

// IsEqual compares two breakdowns field by field.
func (t Totals) IsEqual(other Totals) bool {
	return t.itemCount == other.itemCount &&
		t.subtotal.IsEqual(other.subtotal) &&
		t.serviceFee.IsEqual(other.serviceFee) &&
		t.vat.IsEqual(other.vat) &&
		t.deliveryFee.IsEqual(other.deliveryFee) &&
		t.total.IsEqual(other.total)
}
