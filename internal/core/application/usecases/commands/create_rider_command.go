package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrRiderNameIsRequired = errors.New("rider name is required")
)

// CreateRiderCommand represents a request to register a new delivery rider.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a rider.
// Validates that the rider ID is valid and the name is not empty.
func NewCreateRiderCommand(riderID kernel.UUID, name string) (CreateRiderCommand, error) {
	riderCommand := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		riderCommand.setRiderID(riderID),
		riderCommand.setName(name),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return riderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the unique identifier for the rider.
func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the rider's human-readable name.
func (c CreateRiderCommand) Name() string {
	return c.name
}

func (c *CreateRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return ErrRiderNameIsRequired
	}

	c.name = name
	return nil
}
