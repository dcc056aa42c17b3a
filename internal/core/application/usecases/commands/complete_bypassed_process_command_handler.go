package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/services"
)

// CompleteBypassedProcessCommandHandler finishes a station pass through the
// bypass-specific completion path. The aggregate verifies that the
// referenced bypass belongs to the station's open pass and is approved;
// the re-verified rows replace the pass's recorded tally.
type CompleteBypassedProcessCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteBypassedProcessCommandHandler creates a handler for bypassed completions.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteBypassedProcessCommandHandler(uowFactory OrderUoWFactory) CompleteBypassedProcessCommandHandler {
	return CompleteBypassedProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bypassed completion command.
// Retrieves the order, normalizes the re-verified rows (no mismatch check:
// the approved bypass is the license for the differing counts), closes the
// pass, and persists the aggregate in a single transaction.
func (h CompleteBypassedProcessCommandHandler) Handle(
	ctx context.Context,
	command CompleteBypassedProcessCommand,
) error {
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

	if err = aggregate.CompleteBypassedProcess(
		command.Station(),
		command.BypassRequestID(),
		command.Notes(),
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
