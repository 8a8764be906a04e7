package guard_test

import (
	"errors"
	"testing"

	"foodmarket/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type cartLine struct {
		menuItemID string
		quantity   int
		guard      guard.ConstructorGuard
	}

	var errCartLineNotConstructed = errors.New("cart line must be created via its constructor")

	newCartLine := func(menuItemID string, quantity int) (cartLine, error) {
		if menuItemID == "" {
			return cartLine{}, errors.New("menu item ID is required")
		}
		if quantity < 1 {
			return cartLine{}, errors.New("quantity must be at least 1")
		}
		return cartLine{
			menuItemID: menuItemID,
			quantity:   quantity,
			guard:      guard.NewConstructorGuard(),
		}, nil
	}

	validateCartLine := func(l cartLine) error {
		return l.guard.Validate(errCartLineNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		line, err := newCartLine("margherita", 2)

		require.NoError(t, err)
		require.NoError(t, validateCartLine(line))
		assert.Equal(t, "margherita", line.menuItemID)
		assert.Equal(t, 2, line.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var line cartLine // zero value

		err := validateCartLine(line)

		require.Error(t, err)
		assert.Equal(t, errCartLineNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCartLine("", 1)
		require.Error(t, err)

		_, err = newCartLine("margherita", 0)
		require.Error(t, err)
	})
}

// TestConstructorGuardCopy verifies the guard survives being passed by value.
func TestConstructorGuardCopy(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
