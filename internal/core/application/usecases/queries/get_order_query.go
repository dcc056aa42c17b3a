// Package queries contains read-only operations for the laundry workflow.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows straight from the database and never touch the aggregate.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full view of one order: its item list, every
// station pass with its recorded tally and bypass request, and the derived
// workflow state for each station.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s: washing is %s\n", view.OrderNumber, view.States[station.Washing])
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's full view.
// Returns an error if the order ID is invalid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order view.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerName  string
	PaymentStatus order.PaymentStatus
	CreatedAt     time.Time
	Items         []OrderItemResponse
	WorkProcesses []WorkProcessResponse
	States        map[station.Station]order.StationState
}

// OrderItemResponse is one line of the order's immutable item list.
type OrderItemResponse struct {
	LaundryItemID int64
	Name          string
	Quantity      int
	UnitPrice     int64
}

// WorkProcessResponse is one station pass with its tally and bypass request.
type WorkProcessResponse struct {
	ID            kernel.UUID
	Station       station.Station
	EmployeeID    kernel.UUID
	StartedAt     time.Time
	CompletedAt   *time.Time
	Notes         *string
	RecordedItems []RecordedItemResponse
	Bypass        *BypassRequestResponse
}

// RecordedItemResponse is one line of the tally recorded at a pass.
type RecordedItemResponse struct {
	LaundryItemID int64
	Quantity      int
}

// BypassRequestResponse is the bypass request attached to a pass.
type BypassRequestResponse struct {
	ID          kernel.UUID
	Reason      string
	Status      order.BypassStatus
	AdminNote   *string
	RequestedAt time.Time
}
