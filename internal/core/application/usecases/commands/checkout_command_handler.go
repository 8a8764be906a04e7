package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/services"
)

// CheckoutCommandHandler handles the business logic for placing orders.
// Computes the price breakdown from the cart lines under the platform fee
// policy and persists the new order in "pending" status.
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator services.CheckoutCalculator
	feeConfig  services.FeeConfig
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires an OrderUoWFactory for transactional persistence and the platform
// fee policy the totals are computed under.
func NewCheckoutCommandHandler(uowFactory OrderUoWFactory, feeConfig services.FeeConfig) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewCheckoutCalculator(),
		feeConfig:  feeConfig,
	}
}

// Handle processes the checkout command.
// Derives the totals exactly once at checkout time; the order carries them
// immutably from then on. The order starts pending vendor confirmation with
// payment not yet settled.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := cmd.Lines()
	totals, err := h.calculator.Compute(lines, h.feeConfig)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.VendorID(), lines, totals)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
