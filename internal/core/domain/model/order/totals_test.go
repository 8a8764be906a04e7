package order_test

import (
	"testing"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTotals(t *testing.T) {
	t.Run("should derive grand total from parts", func(t *testing.T) {
		totals := order.NewTotals(
			2,
			kernel.MustMoney(2000),
			kernel.MustMoney(300),
			kernel.MustMoney(150),
			kernel.MustMoney(500),
		)

		require.NoError(t, totals.Validate())
		assert.Equal(t, 2, totals.ItemCount())
		assert.Equal(t, int64(2000), totals.Subtotal().Amount())
		assert.Equal(t, int64(300), totals.ServiceFee().Amount())
		assert.Equal(t, int64(150), totals.VAT().Amount())
		assert.Equal(t, int64(500), totals.DeliveryFee().Amount())
		assert.Equal(t, int64(2950), totals.Total().Amount())
	})
}

func TestTotals_Validate(t *testing.T) {
	t.Run("should reject zero value totals", func(t *testing.T) {
		var totals order.Totals

		err := totals.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrTotalsAreNotConstructed, err)
	})
}

func TestTotals_IsEqual(t *testing.T) {
	a := order.NewTotals(2, kernel.MustMoney(2000), kernel.MustMoney(300), kernel.MustMoney(150), kernel.MustMoney(500))
	b := order.NewTotals(2, kernel.MustMoney(2000), kernel.MustMoney(300), kernel.MustMoney(150), kernel.MustMoney(500))
	c := order.NewTotals(3, kernel.MustMoney(3000), kernel.MustMoney(350), kernel.MustMoney(225), kernel.MustMoney(500))

	assert.True(t, a.IsEqual(b))
	assert.True(t, b.IsEqual(a))
	assert.False(t, a.IsEqual(c))
}
