package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/order"
)

// RecordPaymentCommandHandler handles payment outcomes reported by the
// gateway. A paid outcome marks the order paid; a failed outcome marks the
// payment failed and cancels the order if it has not moved past pending.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment settlement.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment settlement command.
// Returns order.ErrPaymentAlreadySettled when the gateway reports an order
// that already settled; gateways retry webhooks, so callers should treat
// that as terminal rather than retrying.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	priorStatus := aggregate.Status()

	switch cmd.Outcome() {
	case PaymentOutcomePaid:
		if err = aggregate.MarkPaid(); err != nil {
			return err
		}
	case PaymentOutcomeFailed:
		if err = aggregate.MarkPaymentFailed(); err != nil {
			return err
		}
		// A charge that fails before the vendor confirmed kills the order.
		// Later failures need manual resolution and leave the order alone.
		if aggregate.Status() == order.Pending {
			if err = aggregate.ChangeStatus(order.Cancelled); err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Update(ctx, aggregate, priorStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
