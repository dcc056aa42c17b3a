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

// testOrderWithPendingBypass opens a pass at the washing station with a
// pending bypass request and returns the aggregate and the request ID.
func testOrderWithPendingBypass(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()
	aggregate := testOrder(t)
	bypassRequestID := kernel.NewUUID()
	_, err := aggregate.RequestBypass(
		kernel.NewUUID(), bypassRequestID, station.Washing, kernel.NewUUID(),
		"one shirt missing",
		[]order.RecordedItem{{LaundryItemID: 7, Quantity: 2}, {LaundryItemID: 8, Quantity: 2}},
		aggregate.CreatedAt())
	require.NoError(t, err)
	return aggregate, bypassRequestID
}

func TestResolveBypassCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	aggregate, bypassRequestID := testOrderWithPendingBypass(t)
	cmd, _ := commands.NewResolveBypassCommand(bypassRequestID, true, "recount verified")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByBypassRequest", mock.Anything, bypassRequestID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveBypassCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Approval keeps the pass open for the bypassed completion flow.
	assert.Equal(t, order.StateProcess, aggregate.StationState(station.Washing))
	_, bypass := aggregate.FindBypassRequest(bypassRequestID)
	require.NotNil(t, bypass)
	assert.Equal(t, order.BypassStatusApproved, bypass.Status())
	require.NotNil(t, bypass.AdminNote())
	assert.Equal(t, "recount verified", *bypass.AdminNote())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResolveBypassCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	aggregate, bypassRequestID := testOrderWithPendingBypass(t)
	cmd, _ := commands.NewResolveBypassCommand(bypassRequestID, false, "recount does not match")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByBypassRequest", mock.Anything, bypassRequestID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveBypassCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Rejection sends the station back through verification.
	assert.Equal(t, order.StateBypassRejected, aggregate.StationState(station.Washing))
	assert.True(t, aggregate.StationState(station.Washing).CanSubmitVerification())
}

func TestResolveBypassCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()
	aggregate, bypassRequestID := testOrderWithPendingBypass(t)
	require.NoError(t, aggregate.ResolveBypass(bypassRequestID, true, ""))

	cmd, _ := commands.NewResolveBypassCommand(bypassRequestID, false, "changed my mind")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByBypassRequest", mock.Anything, bypassRequestID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveBypassCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResolveBypassCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	bypassRequestID := kernel.NewUUID()
	cmd, _ := commands.NewResolveBypassCommand(bypassRequestID, true, "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByBypassRequest", mock.Anything, bypassRequestID).Return(nil, assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveBypassCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
}

func TestResolveBypassCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ResolveBypassCommand{}
	h := commands.NewResolveBypassCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrResolveBypassCommandIsNotConstructed)
}
