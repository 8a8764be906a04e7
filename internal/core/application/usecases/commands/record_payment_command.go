package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrPaymentOutcomeIsInvalid = errors.New("payment outcome must be paid or failed")
)

// PaymentOutcome is the result reported by the external payment gateway.
type PaymentOutcome string

const (
	PaymentOutcomePaid   PaymentOutcome = "paid"
	PaymentOutcomeFailed PaymentOutcome = "failed"
)

// RecordPaymentCommand represents the payment gateway reporting the outcome
// of an order's charge. Each order settles exactly once.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome PaymentOutcome

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment outcome.
func NewRecordPaymentCommand(orderID kernel.UUID, outcome PaymentOutcome) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setOutcome(outcome),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the reported payment outcome.
func (c RecordPaymentCommand) Outcome() PaymentOutcome {
	return c.outcome
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setOutcome(outcome PaymentOutcome) error {
	if outcome != PaymentOutcomePaid && outcome != PaymentOutcomeFailed {
		return ErrPaymentOutcomeIsInvalid
	}

	c.outcome = outcome
	return nil
}
