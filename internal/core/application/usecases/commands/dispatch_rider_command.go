package commands

import (
	"errors"

	"foodmarket/internal/pkg/guard"
)

var ErrDispatchRiderCommandIsNotConstructed = errors.New(
	"DispatchRiderCommand must be created via NewDispatchRiderCommand constructor",
)

// DispatchRiderCommand triggers the assignment of a free rider to the oldest
// unclaimed confirmed order. This is the platform-driven counterpart of a
// rider claiming an order themselves; the background dispatcher fires it
// periodically so confirmed orders do not sit unclaimed.
type DispatchRiderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchRiderCommand creates a new command to trigger rider dispatch.
// This is a parameterless command that initiates the rider-order matching
// process.
func NewDispatchRiderCommand() DispatchRiderCommand {
	return DispatchRiderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchRiderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchRiderCommandIsNotConstructed)
}
