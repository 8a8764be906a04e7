package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartLinesAreRequired = errors.New("at least one cart line is required")
)

// CheckoutCommand represents a request to place an order from a cart.
// Encapsulates the purchasing customer, the vendor, and the snapshotted
// cart lines the totals will be computed from.
//
// Example:
//
//	lines := []order.Item{burger, fries}
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), customerID, vendorID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, feeConfig)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	vendorID   kernel.UUID
	lines      []order.Item

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place a new order.
// Validates that all identifiers are valid and that the cart holds at least
// one validated line.
func NewCheckoutCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	lines []order.Item,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setVendorID(vendorID),
		checkoutCommand.setLines(lines),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the purchasing customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the vendor's identifier.
func (c CheckoutCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Lines returns a copy of the snapshotted cart lines.
func (c CheckoutCommand) Lines() []order.Item {
	lines := make([]order.Item, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CheckoutCommand) setLines(lines []order.Item) error {
	if len(lines) == 0 {
		return ErrCartLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]order.Item, len(lines))
	copy(c.lines, lines)
	return nil
}
