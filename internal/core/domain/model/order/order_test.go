package order_test

import (
	"testing"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	first, err := order.NewItem(kernel.NewUUID(), kernel.MustMoney(1000), 2, "")
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), kernel.MustMoney(500), 1, "extra spicy")
	require.NoError(t, err)

	return []order.Item{first, second}
}

// testTotals builds a breakdown consistent with testItems:
// 3 units, subtotal 2500.
func testTotals() order.Totals {
	return order.NewTotals(
		3,
		kernel.MustMoney(2500),
		kernel.MustMoney(350),
		kernel.MustMoney(188),
		kernel.MustMoney(500),
	)
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testItems(t), testTotals())
	require.NoError(t, err)
	return o
}

// confirmAndClaim moves a fresh order to Preparing with a rider assigned.
func confirmAndClaim(t *testing.T, o *order.Order) kernel.UUID {
	t.Helper()

	require.NoError(t, o.ChangeStatus(order.Confirmed))
	riderID := kernel.NewUUID()
	require.NoError(t, o.AssignRider(riderID))
	return riderID
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in pending status", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		vendorID := kernel.NewUUID()

		o, err := order.NewOrder(orderID, customerID, vendorID, testItems(t), testTotals())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, orderID.IsEqual(o.ID()))
		assert.True(t, customerID.IsEqual(o.CustomerID()))
		assert.True(t, vendorID.IsEqual(o.VendorID()))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.Rider())
		assert.Nil(t, o.EstimatedDeliveryTime())
		assert.Len(t, o.Items(), 2)
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Second)
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, testTotals())

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should reject totals that do not match items", func(t *testing.T) {
		mismatchedTotals := order.NewTotals(
			5,
			kernel.MustMoney(9999),
			kernel.MustMoney(350),
			kernel.MustMoney(188),
			kernel.MustMoney(500),
		)

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testItems(t), mismatchedTotals)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrTotalsMismatch)
	})

	t.Run("should reject unconstructed totals", func(t *testing.T) {
		var zeroTotals order.Totals

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testItems(t), zeroTotals)

		require.Error(t, err)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := order.NewOrder(zeroID, kernel.NewUUID(), kernel.NewUUID(), testItems(t), testTotals())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), zeroID, kernel.NewUUID(), testItems(t), testTotals())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), zeroID, testItems(t), testTotals())
		require.Error(t, err)
	})

	t.Run("should copy items defensively", func(t *testing.T) {
		items := testItems(t)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, testTotals())
		require.NoError(t, err)

		returned := o.Items()
		returned[0] = order.Item{}

		assert.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should confirm a pending order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should treat same-state request as no-op", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		err := o.ChangeStatus(order.Pending)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
	})

	t.Run("should reject skipping confirmation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Ready)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject preparing without a rider", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))

		err := o.ChangeStatus(order.Preparing)

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should walk the lifecycle after rider assignment", func(t *testing.T) {
		o := newTestOrder(t)
		confirmAndClaim(t, o)

		require.NoError(t, o.ChangeStatus(order.Ready))
		require.NoError(t, o.ChangeStatus(order.PickedUp))
		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should cancel from pending", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should keep the rider on a cancelled order for audit", func(t *testing.T) {
		o := newTestOrder(t)
		riderID := confirmAndClaim(t, o)

		require.NoError(t, o.ChangeStatus(order.Cancelled))

		require.NotNil(t, o.Rider())
		assert.True(t, riderID.IsEqual(*o.Rider()))
	})

	t.Run("should reject any change after delivery", func(t *testing.T) {
		o := newTestOrder(t)
		confirmAndClaim(t, o)
		require.NoError(t, o.ChangeStatus(order.Ready))
		require.NoError(t, o.ChangeStatus(order.PickedUp))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.ChangeStatus(order.Cancelled)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject unknown requested status", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Status(42))

		require.Error(t, err)
	})
}

func TestOrder_AssignRider(t *testing.T) {
	t.Run("should assign rider and advance to preparing", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		riderID := kernel.NewUUID()

		err := o.AssignRider(riderID)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		require.NotNil(t, o.Rider())
		assert.True(t, riderID.IsEqual(*o.Rider()))
	})

	t.Run("should reject claim on pending order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignRider(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderNotClaimable, err)
		assert.Nil(t, o.Rider())
	})

	t.Run("should reject second claim", func(t *testing.T) {
		o := newTestOrder(t)
		confirmAndClaim(t, o)

		err := o.AssignRider(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderNotClaimable, err)
	})

	t.Run("should reject invalid rider ID", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		var zeroID kernel.UUID

		err := o.AssignRider(zeroID)

		require.Error(t, err)
		assert.Nil(t, o.Rider())
	})
}

func TestOrder_Payment(t *testing.T) {
	t.Run("should mark pending payment as paid", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("should mark pending payment as failed", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkPaymentFailed())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	})

	t.Run("should reject double settlement", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())

		require.Error(t, o.MarkPaid())
		require.Error(t, o.MarkPaymentFailed())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})
}

func TestOrder_ScheduleDelivery(t *testing.T) {
	t.Run("should set estimated delivery time", func(t *testing.T) {
		o := newTestOrder(t)
		eta := time.Now().UTC().Add(45 * time.Minute)

		err := o.ScheduleDelivery(eta)

		require.NoError(t, err)
		require.NotNil(t, o.EstimatedDeliveryTime())
		assert.Equal(t, eta, *o.EstimatedDeliveryTime())
	})

	t.Run("should reject scheduling on terminal order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.ScheduleDelivery(time.Now().UTC())

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		riderID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC().Add(-time.Minute)
		eta := time.Now().UTC().Add(20 * time.Minute)

		o, err := order.RestoreOrder(
			orderID,
			kernel.NewUUID(),
			kernel.NewUUID(),
			&riderID,
			testItems(t),
			testTotals(),
			order.PickedUp,
			order.PaymentPaid,
			createdAt,
			updatedAt,
			&eta,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.PickedUp, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		require.NotNil(t, o.Rider())
		assert.True(t, riderID.IsEqual(*o.Rider()))
	})

	t.Run("should reject preparing order without rider", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			testItems(t), testTotals(),
			order.Preparing, order.PaymentPaid,
			time.Now().UTC(), time.Now().UTC(), nil,
		)

		require.Error(t, err)
	})

	t.Run("should reject pending order with rider", func(t *testing.T) {
		riderID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &riderID,
			testItems(t), testTotals(),
			order.Pending, order.PaymentPending,
			time.Now().UTC(), time.Now().UTC(), nil,
		)

		require.Error(t, err)
	})

	t.Run("should allow cancelled order with or without rider", func(t *testing.T) {
		riderID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &riderID,
			testItems(t), testTotals(),
			order.Cancelled, order.PaymentPaid,
			time.Now().UTC(), time.Now().UTC(), nil,
		)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			testItems(t), testTotals(),
			order.Cancelled, order.PaymentPending,
			time.Now().UTC(), time.Now().UTC(), nil,
		)
		require.NoError(t, err)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			testItems(t), testTotals(),
			order.Unknown, order.PaymentPending,
			time.Now().UTC(), time.Now().UTC(), nil,
		)

		require.Error(t, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		o := newTestOrder(t)
		restored, err := order.RestoreOrder(
			o.ID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			testItems(t), testTotals(),
			order.Pending, order.PaymentPending,
			time.Now().UTC(), time.Now().UTC(), nil,
		)
		require.NoError(t, err)

		assert.True(t, o.IsEqual(restored))
		assert.False(t, o.IsEqual(newTestOrder(t)))
		assert.False(t, o.IsEqual(nil))
	})
}
