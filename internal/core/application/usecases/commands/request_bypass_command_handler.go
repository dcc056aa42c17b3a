package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
)

// RequestBypassCommandHandler escalates a verification mismatch to the admin
// approval workflow. Opens the station's work process pass recording the
// mismatched counts and attaches a pending bypass request to it.
//
// While the request is pending, state derivation blocks all further worker
// actions at the station.
type RequestBypassCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestBypassCommandHandler creates a handler for bypass escalations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRequestBypassCommandHandler(uowFactory OrderUoWFactory) RequestBypassCommandHandler {
	return RequestBypassCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bypass request command.
// Retrieves the order, normalizes the mismatched rows (without mismatch
// checking: the mismatch is the reason the bypass exists), records the pass
// with its pending bypass request, and persists the aggregate.
func (h RequestBypassCommandHandler) Handle(ctx context.Context, command RequestBypassCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	sheet := services.NewVerificationSheet(command.Rows())
	recorded := sheet.Normalize(aggregate)

	if _, err = aggregate.RequestBypass(
		kernel.NewUUID(),
		kernel.NewUUID(),
		command.Station(),
		command.EmployeeID(),
		command.Reason(),
		recorded,
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
