package commands

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyClaimed is returned when another rider won the claim
	// race or the order left the claimable state.
	ErrOrderAlreadyClaimed = errors.New("order already claimed by another rider")

	// ErrRiderNotFree is returned when the claiming rider is off shift or
	// already carrying an active order.
	ErrRiderNotFree = errors.New("rider is not free to claim an order")
)

// ClaimOrderCommandHandler handles a rider claiming a specific order.
//
// The logical claim is applied in memory first through the assignment
// policy, then written with the repository's conditional claim: the order
// row must still be confirmed and unassigned, the rider row still unbooked.
// Either side losing its race surfaces as ErrOrderAlreadyClaimed or
// ErrRiderNotFree; nothing half-applied survives because it all happens in
// one transaction.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimOrderCommandHandler creates a handler for rider claim operations.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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
	riderRepo := uow.RiderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	claimingRider, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	policy := services.NewAssignmentPolicy()
	if !policy.CanClaim(aggregate, claimingRider) {
		if !claimingRider.IsFree() {
			return ErrRiderNotFree
		}
		return ErrOrderAlreadyClaimed
	}

	if err = policy.ApplyClaim(aggregate, claimingRider); err != nil {
		return err
	}

	if err = orderRepo.ClaimForRider(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return ErrOrderAlreadyClaimed
		}
		return err
	}

	if err = riderRepo.Update(ctx, claimingRider); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return ErrRiderNotFree
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
