// Package guard provides a constructor guard for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect
// whether the struct was created through its designated constructor or
// left as a zero value, so that validation can reject the latter.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value of ConstructorGuard fails validation, which is exactly
// what makes the pattern work: any struct that embeds a guard and is
// instantiated directly (or deserialized without going through the
// constructor) will carry a zero-value guard.
//
// Example usage:
//
//	var ErrFeeConfigNotConstructed = errors.New("FeeConfig must be created via NewFeeConfig")
//
//	type FeeConfig struct {
//	    baseServiceFee kernel.Money
//	    guard          guard.ConstructorGuard
//	}
//
//	func NewFeeConfig(base kernel.Money) (FeeConfig, error) {
//	    return FeeConfig{baseServiceFee: base, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c FeeConfig) Validate() error {
//	    return c.guard.Validate(ErrFeeConfigNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
