package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteBypassedProcessCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, bypassRequestID := testOrderWithPendingBypass(t)
	require.NoError(t, aggregate.ResolveBypass(bypassRequestID, true, "recount verified"))

	cmd, _ := commands.NewCompleteBypassedProcessCommand(
		aggregate.ID(), station.Washing, bypassRequestID, "completed short one shirt",
		mismatchedRows())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteBypassedProcessCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.StateCompleted, aggregate.StationState(station.Washing))
	wp := aggregate.FindWorkProcess(station.Washing)
	require.NotNil(t, wp)
	require.NotNil(t, wp.CompletedAt())
	assert.ElementsMatch(t, []order.RecordedItem{
		{LaundryItemID: 7, Quantity: 2},
		{LaundryItemID: 8, Quantity: 2},
	}, wp.RecordedItems())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteBypassedProcessCommandHandler_Handle_BypassNotApproved(t *testing.T) {
	ctx := t.Context()
	aggregate, bypassRequestID := testOrderWithPendingBypass(t)

	cmd, _ := commands.NewCompleteBypassedProcessCommand(
		aggregate.ID(), station.Washing, bypassRequestID, "", mismatchedRows())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteBypassedProcessCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompleteBypassedProcessCommandHandler_Handle_WrongBypassRequest(t *testing.T) {
	ctx := t.Context()
	aggregate, bypassRequestID := testOrderWithPendingBypass(t)
	require.NoError(t, aggregate.ResolveBypass(bypassRequestID, true, ""))

	// References a bypass request the order has never seen.
	cmd, _ := commands.NewCompleteBypassedProcessCommand(
		aggregate.ID(), station.Washing, kernel.NewUUID(), "", mismatchedRows())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteBypassedProcessCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.StateProcess, aggregate.StationState(station.Washing))
}

func TestCompleteBypassedProcessCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteBypassedProcessCommand{}
	h := commands.NewCompleteBypassedProcessCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCompleteBypassedProcessCommandIsNotConstructed)
}
