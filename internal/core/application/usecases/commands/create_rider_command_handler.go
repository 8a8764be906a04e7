package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler handles rider registration.
// New riders start available with no active order.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider registration.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider registration command.
func (h CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newRider, err := rider.NewRider(cmd.RiderID(), cmd.Name())
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

	if err = uow.RiderRepository().Add(ctx, newRider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
