package commands

import (
	"context"
	"time"
)

// CompleteProcessCommandHandler finishes a station pass through the standard
// completion path. The aggregate rejects the call when the derived station
// state forbids completion or when the pass's bypass was approved (such
// passes must complete through the bypass-specific command).
//
// No optimistic transition happens: on any error the persisted state is
// untouched and the next state derivation reflects the unchanged snapshot.
type CompleteProcessCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteProcessCommandHandler creates a handler for standard completions.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteProcessCommandHandler(uowFactory OrderUoWFactory) CompleteProcessCommandHandler {
	return CompleteProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Retrieves the order, closes the station's open pass with the completion
// timestamp and notes, and persists the aggregate in a single transaction.
func (h CompleteProcessCommandHandler) Handle(ctx context.Context, command CompleteProcessCommand) error {
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

	if err = aggregate.CompleteProcess(command.Station(), command.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
