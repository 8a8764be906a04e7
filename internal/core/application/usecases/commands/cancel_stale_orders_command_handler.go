package commands

import (
	"context"
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler expires pending orders the vendor never
// confirmed. Each cancellation is written conditionally on the order still
// being pending, so a vendor confirming concurrently always wins over the
// expiry sweep.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the expiry sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command. A sweep that finds nothing to cancel
// succeeds. Orders that slip away mid-sweep (vendor confirmed after the
// read) are skipped, not treated as failures.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		if err = staleOrder.ChangeStatus(order.Cancelled); err != nil {
			return err
		}

		err = orderRepo.Update(ctx, staleOrder, order.Pending)
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			continue
		}
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
