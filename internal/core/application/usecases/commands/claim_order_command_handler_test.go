package commands_test

import (
	"testing"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClaimOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewClaimOrderCommand(kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewClaimOrderCommand(zeroID, kernel.NewUUID())
		require.Error(t, err)

		_, err = commands.NewClaimOrderCommand(kernel.NewUUID(), zeroID)
		require.Error(t, err)
	})
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := testOrderWithStatus(t, order.Confirmed, nil)
	claimingRider := testFreeRider(t)

	cmd, err := commands.NewClaimOrderCommand(testOrder.ID(), claimingRider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, claimingRider.ID()).Return(claimingRider, nil).Once(),
		orderRepo.On("ClaimForRider", ctx, testOrder).Return(nil).Once(),
		riderRepo.On("Update", ctx, claimingRider).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, testOrder.Status())
	require.NotNil(t, testOrder.Rider())
	assert.True(t, claimingRider.ID().IsEqual(*testOrder.Rider()))
	require.NotNil(t, claimingRider.ActiveOrder())
	assert.True(t, testOrder.ID().IsEqual(*claimingRider.ActiveOrder()))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_OrderAlreadyClaimed(t *testing.T) {
	ctx := t.Context()

	otherRiderID := kernel.NewUUID()
	claimedOrder := testOrderWithStatus(t, order.Preparing, &otherRiderID)
	claimingRider := testFreeRider(t)

	cmd, err := commands.NewClaimOrderCommand(claimedOrder.ID(), claimingRider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, claimedOrder.ID()).Return(claimedOrder, nil).Once(),
		riderRepo.On("Get", ctx, claimingRider.ID()).Return(claimingRider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderAlreadyClaimed)
	assert.True(t, claimingRider.IsFree())
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_RiderNotFree(t *testing.T) {
	ctx := t.Context()

	testOrder := testOrderWithStatus(t, order.Confirmed, nil)
	busyRider := testFreeRider(t)
	require.NoError(t, busyRider.ClaimOrder(kernel.NewUUID()))

	cmd, err := commands.NewClaimOrderCommand(testOrder.ID(), busyRider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, busyRider.ID()).Return(busyRider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRiderNotFree)
	assert.Equal(t, order.Confirmed, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_LostClaimRace(t *testing.T) {
	ctx := t.Context()

	testOrder := testOrderWithStatus(t, order.Confirmed, nil)
	claimingRider := testFreeRider(t)

	cmd, err := commands.NewClaimOrderCommand(testOrder.ID(), claimingRider.ID())
	require.NoError(t, err)

	versionErr := errs.NewVersionIsInvalidError("order")
	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, claimingRider.ID()).Return(claimingRider, nil).Once(),
		orderRepo.On("ClaimForRider", ctx, testOrder).Return(versionErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
