package commands

import (
	"context"
)

// ResolveBypassCommandHandler applies an admin decision to a pending bypass
// request. This is the only path by which a bypass request ever changes
// status; the worker side purely reads the result through state derivation.
type ResolveBypassCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResolveBypassCommandHandler creates a handler for bypass resolutions.
// Requires an OrderUoWFactory for transactional persistence.
func NewResolveBypassCommandHandler(uowFactory OrderUoWFactory) ResolveBypassCommandHandler {
	return ResolveBypassCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
// Loads the order owning the referenced bypass request, applies the
// transition on the aggregate (pending -> approved/rejected only), and
// persists the result.
func (h ResolveBypassCommandHandler) Handle(ctx context.Context, command ResolveBypassCommand) error {
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

	aggregate, err := ordersRepo.GetByBypassRequest(ctx, command.BypassRequestID())
	if err != nil {
		return err
	}

	if err = aggregate.ResolveBypass(
		command.BypassRequestID(),
		command.Approve(),
		command.AdminNote(),
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
