package commands

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/errs"
)

var (
	ErrNoOrderToDispatch  = errors.New("no unclaimed confirmed order found")
	ErrNoRidersAvailable  = errors.New("no free riders found")
	ErrDispatchRaceIsLost = errors.New("dispatch lost the claim race")
)

// DispatchRiderCommandHandler orchestrates the automatic rider assignment
// process. Finds the oldest unclaimed confirmed order, matches it with a
// free rider using the assignment policy, and persists both sides with
// conditional writes inside one transaction.
//
// Example:
//
//	handler := NewDispatchRiderCommandHandler(uowFactory)
//	cmd := NewDispatchRiderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderToDispatch):
//	    log.Println("Nothing to dispatch")
//	case errors.Is(err, ErrNoRidersAvailable):
//	    log.Println("All riders are busy")
//	case errors.Is(err, ErrDispatchRaceIsLost):
//	    log.Println("A rider claimed the order first")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchRiderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchRiderCommandHandler creates a handler for rider dispatch
// operations. Requires a UoWFactory for coordinating transactional updates
// across both repositories.
func NewDispatchRiderCommandHandler(uowFactory UoWFactory) DispatchRiderCommandHandler {
	return DispatchRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Returns specific errors for no claimable orders (ErrNoOrderToDispatch),
// no free riders (ErrNoRidersAvailable), and a lost claim race against a
// self-claiming rider (ErrDispatchRaceIsLost). All three are routine
// outcomes for a periodic dispatcher, not failures.
func (h DispatchRiderCommandHandler) Handle(ctx context.Context, cmd DispatchRiderCommand) error {
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

	aggregate, err := orderRepo.GetFirstUnassignedConfirmed(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderToDispatch
	}
	if err != nil {
		return err
	}

	riders, err := riderRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(riders) == 0 {
		return ErrNoRidersAvailable
	}

	assignedRider, err := services.NewAssignmentPolicy().Dispatch(aggregate, riders)
	if err != nil {
		return err
	}

	if err = orderRepo.ClaimForRider(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return ErrDispatchRaceIsLost
		}
		return err
	}

	if err = riderRepo.Update(ctx, assignedRider); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return ErrDispatchRaceIsLost
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
