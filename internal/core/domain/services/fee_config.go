package services

import (
	"errors"
	"fmt"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Validation errors for fee configuration.
var (
	// ErrFeeConfigIsNotConstructed is returned when using an improperly initialized FeeConfig.
	ErrFeeConfigIsNotConstructed = errors.New("FeeConfig must be created via NewFeeConfig constructor")

	// ErrServiceFeeCapTooLow is returned when the cap is below the base service
	// fee, which would make the cap unreachable arithmetic nonsense.
	ErrServiceFeeCapTooLow = errors.New("service fee cap must be at least the base service fee")
)

// FeeConfig describes the platform's fee computation policy: the base and
// per-item service fee with its cap, the flat delivery fee, and the VAT
// rate. It is process-wide configuration, read-only at checkout time.
//
// Example:
//
//	cfg, err := NewFeeConfig(
//	    kernel.MustMoney(200),  // base service fee
//	    kernel.MustMoney(50),   // per-item service fee
//	    kernel.MustMoney(500),  // service fee cap
//	    kernel.MustMoney(500),  // flat delivery fee
//	    decimal.RequireFromString("0.075"),
//	)
type FeeConfig struct {
	// baseServiceFee is charged on every order regardless of size
	baseServiceFee kernel.Money

	// perItemServiceFee is charged per unit in the cart
	perItemServiceFee kernel.Money

	// serviceFeeCap bounds the total service fee
	serviceFeeCap kernel.Money

	// deliveryFee is the flat delivery charge
	deliveryFee kernel.Money

	// vatRate is the VAT fraction applied to the subtotal, e.g. 0.075
	vatRate decimal.Decimal

	guard guard.ConstructorGuard
}

// NewFeeConfig creates a validated fee policy.
//
// Rules:
//   - all monetary amounts are non-negative (enforced by kernel.Money)
//   - the cap must be at least the base service fee
//   - the VAT rate must lie in [0, 1)
func NewFeeConfig(
	baseServiceFee kernel.Money,
	perItemServiceFee kernel.Money,
	serviceFeeCap kernel.Money,
	deliveryFee kernel.Money,
	vatRate decimal.Decimal,
) (FeeConfig, error) {
	if serviceFeeCap.Cmp(baseServiceFee) < 0 {
		return FeeConfig{}, ErrServiceFeeCapTooLow
	}

	if vatRate.IsNegative() || vatRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return FeeConfig{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"vatRate", vatRate.String(), "0", "1",
			fmt.Errorf("VAT rate must be a fraction in [0, 1)"),
		)
	}

	return FeeConfig{
		baseServiceFee:    baseServiceFee,
		perItemServiceFee: perItemServiceFee,
		serviceFeeCap:     serviceFeeCap,
		deliveryFee:       deliveryFee,
		vatRate:           vatRate,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the FeeConfig was created through NewFeeConfig.
func (c FeeConfig) Validate() error {
	return c.guard.Validate(ErrFeeConfigIsNotConstructed)
}

// BaseServiceFee returns the flat component of the service fee.
func (c FeeConfig) BaseServiceFee() kernel.Money {
	return c.baseServiceFee
}

// PerItemServiceFee returns the per-unit component of the service fee.
func (c FeeConfig) PerItemServiceFee() kernel.Money {
	return c.perItemServiceFee
}

// ServiceFeeCap returns the upper bound on the service fee.
func (c FeeConfig) ServiceFeeCap() kernel.Money {
	return c.serviceFeeCap
}

// DeliveryFee returns the flat delivery charge.
func (c FeeConfig) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// VATRate returns the VAT fraction applied to the subtotal.
func (c FeeConfig) VATRate() decimal.Decimal {
	return c.vatRate
}
