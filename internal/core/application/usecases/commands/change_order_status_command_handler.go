package commands

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/model/rider"
)

// ChangeOrderStatusCommandHandler handles lifecycle transitions requested by
// vendors, riders, and customers.
//
// The write is conditional on the status the handler read, so two actors
// racing on the same order cannot both win; the loser gets
// errs.ErrVersionIsInvalid and should re-read before retrying.
//
// When a transition ends the order (delivered or cancelled) and a rider is
// attached, the handler releases the rider in the same transaction. The
// order keeps the rider reference for audit; only the rider's side is
// cleared so they can take new work.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order lifecycle
// transitions. Requires a UoWFactory because terminal transitions touch the
// rider aggregate as well.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if aggregate.Status() == priorStatus {
		// Idempotent request, nothing to persist.
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate, priorStatus); err != nil {
		return err
	}

	if aggregate.Status().IsTerminal() && aggregate.Rider() != nil {
		if err = h.releaseRider(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseRider frees the rider attached to a finished order so they can
// claim new work. A rider who already dropped the order is fine.
func (h ChangeOrderStatusCommandHandler) releaseRider(ctx context.Context, uow UoW, aggregate *order.Order) error {
	riderRepo := uow.RiderRepository()

	assignedRider, err := riderRepo.Get(ctx, *aggregate.Rider())
	if err != nil {
		return err
	}

	if err = assignedRider.ReleaseOrder(aggregate.ID()); err != nil {
		if errors.Is(err, rider.ErrOrderNotHeld) {
			return nil
		}
		return err
	}

	return riderRepo.Update(ctx, assignedRider)
}
