package order

import (
	"errors"
	"fmt"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents one cart line: a menu item and the quantity ordered.
// The unit price is snapshotted at the moment the line is added to the
// cart, not looked up live, so later menu price changes never alter an
// order that is already placed.
//
// Invariants:
//   - quantity is at least 1; a line whose last unit is removed is removed
//     entirely, never kept at zero quantity
//   - unit price is non-negative (enforced by kernel.Money)
//
// Item is an immutable value object.
type Item struct {
	// menuItemID identifies the menu item this line refers to
	menuItemID kernel.UUID

	// unitPrice is the price per unit at add-to-cart time, in minor units
	unitPrice kernel.Money

	// quantity is the number of units ordered, at least 1
	quantity int

	// specialInstructions is free-form preparation notes, may be empty
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewItem creates a validated cart line.
//
// Parameters:
//   - menuItemID: identifier of the menu item (must be a valid UUID)
//   - unitPrice: snapshotted price per unit
//   - quantity: number of units (must be at least 1)
//   - specialInstructions: optional preparation notes
//
// Returns a validation error if the menu item ID is invalid or the
// quantity is below 1.
func NewItem(
	menuItemID kernel.UUID,
	unitPrice kernel.Money,
	quantity int,
	specialInstructions string,
) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		menuItemID:          menuItemID,
		unitPrice:           unitPrice,
		quantity:            quantity,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// UnitPrice returns the snapshotted price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// SpecialInstructions returns the optional preparation notes.
func (i Item) SpecialInstructions() string {
	return i.specialInstructions
}

// LineTotal returns unitPrice multiplied by quantity.
// Integer minor-unit arithmetic, always exact.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.MulInt(int64(i.quantity))
}
