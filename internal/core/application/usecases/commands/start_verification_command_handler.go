package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
)

// StartVerificationCommandHandler runs the verification step of the station
// workflow. Checks the worker's counts against the order's original item list
// and, on a match, opens the station's work process pass.
//
// On a mismatch the handler returns services.ErrQuantityMismatch and persists
// nothing: the worker either corrects the counts or escalates through the
// bypass workflow.
//
// Example:
//
//	handler := NewStartVerificationCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrQuantityMismatch):
//	    // open bypass-request flow
//	case err != nil:
//	    // report and let the worker retry
//	}
type StartVerificationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartVerificationCommandHandler creates a handler for verification submissions.
// Requires an OrderUoWFactory for transactional persistence.
func NewStartVerificationCommandHandler(uowFactory OrderUoWFactory) StartVerificationCommandHandler {
	return StartVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
// Retrieves the order, verifies the sheet against its item list, opens the
// work process pass, and persists the aggregate in a single transaction.
// State gating (no open pass, pending bypass blocks, etc.) is enforced by the
// aggregate; a gate violation surfaces as a typed domain error.
func (h StartVerificationCommandHandler) Handle(ctx context.Context, command StartVerificationCommand) error {
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
	recorded, err := sheet.Verify(aggregate)
	if err != nil {
		return err
	}

	if _, err = aggregate.StartWorkProcess(
		kernel.NewUUID(),
		command.Station(),
		command.EmployeeID(),
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
