package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers new laundry orders.
// Generates the human-readable order number and persists the aggregate with
// its immutable item list within a transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Jane Roe", items)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Order creation failed: %v", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the order aggregate with a generated order number and adds it to the
// repository within a single transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
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

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		command.OrderID(),
		newOrderNumber(command, now),
		command.CustomerName(),
		command.Items(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// newOrderNumber derives the human-readable order reference from the
// placement date and the order identifier, e.g. "LND-20260831-550E8400".
func newOrderNumber(command CreateOrderCommand, placedAt time.Time) string {
	shortID := strings.ToUpper(strings.ReplaceAll(command.OrderID().String(), "-", ""))[:8]
	return fmt.Sprintf("LND-%s-%s", placedAt.Format("20060102"), shortID)
}
