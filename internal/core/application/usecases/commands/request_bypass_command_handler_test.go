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

func TestRequestBypassCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)
	cmd, _ := commands.NewRequestBypassCommand(
		aggregate.ID(), kernel.NewUUID(), station.Washing, "one shirt missing", mismatchedRows())

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

	h := commands.NewRequestBypassCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// The station is now gated on the admin decision and the mismatched
	// tally is preserved on the pass.
	assert.Equal(t, order.StateBypassPending, aggregate.StationState(station.Washing))
	wp := aggregate.FindWorkProcess(station.Washing)
	require.NotNil(t, wp)
	require.NotNil(t, wp.Bypass())
	assert.Equal(t, "one shirt missing", wp.Bypass().Reason())
	assert.ElementsMatch(t, []order.RecordedItem{
		{LaundryItemID: 7, Quantity: 2},
		{LaundryItemID: 8, Quantity: 2},
	}, wp.RecordedItems())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRequestBypassCommandHandler_Handle_AlreadyPending(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)
	_, err := aggregate.RequestBypass(
		kernel.NewUUID(), kernel.NewUUID(), station.Washing, kernel.NewUUID(),
		"one shirt missing", nil, aggregate.CreatedAt())
	require.NoError(t, err)

	cmd, _ := commands.NewRequestBypassCommand(
		aggregate.ID(), kernel.NewUUID(), station.Washing, "still missing", mismatchedRows())

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

	h := commands.NewRequestBypassCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrBypassNotAllowed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestBypassCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RequestBypassCommand{}
	h := commands.NewRequestBypassCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRequestBypassCommandIsNotConstructed)
}

func TestRequestBypassCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRequestBypassCommand(
		kernel.NewUUID(), kernel.NewUUID(), station.Washing, "one shirt missing", mismatchedRows())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestBypassCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
}
