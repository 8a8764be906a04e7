package order

import (
	"fmt"

	"foodmarket/internal/pkg/errs"
)

// PaymentStatus tracks the payment side of an order independently of the
// fulfillment lifecycle. The actual charge happens in an external payment
// gateway; the core only records the classified outcome.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status at checkout.
	PaymentPending

	// PaymentPaid indicates the gateway reported a successful charge.
	PaymentPaid

	// PaymentFailed indicates the gateway reported a failed charge.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "Unknown",
		PaymentPending: "Pending",
		PaymentPaid:    "Paid",
		PaymentFailed:  "Failed",
	}
}

// Validate checks if the PaymentStatus value is a valid enum member.
// PaymentUnknown (0) and out-of-range values are invalid.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return nil
	case PaymentUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
}

// String returns the human-readable name of the payment status.
// Returns "Unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
