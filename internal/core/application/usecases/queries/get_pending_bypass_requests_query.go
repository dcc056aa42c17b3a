package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetPendingBypassRequestsQueryIsNotConstructed = errors.New(
		"GetPendingBypassRequestsQuery must be created via NewGetPendingBypassRequestsQuery constructor",
	)
)

// GetPendingBypassRequestsQuery retrieves all bypass requests awaiting an
// admin decision. This backs the admin approval inbox.
//
// Example:
//
//	query := NewGetPendingBypassRequestsQuery()
//	handler := NewGetPendingBypassRequestsQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending bypass requests: %w", err)
//	}
//
//	fmt.Printf("%d bypass requests awaiting decision\n", len(pending))
type GetPendingBypassRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingBypassRequestsQuery creates a query to retrieve pending bypass requests.
// This is a parameterless query that fetches the whole admin inbox.
func NewGetPendingBypassRequestsQuery() GetPendingBypassRequestsQuery {
	return GetPendingBypassRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingBypassRequestsQueryIsNotConstructed if validation fails.
func (q GetPendingBypassRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBypassRequestsQueryIsNotConstructed)
}

// GetPendingBypassRequestsQueryResponse is one entry of the admin inbox.
// Carries enough order context to decide without a second lookup.
type GetPendingBypassRequestsQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	OrderNumber  string
	CustomerName string
	Station      station.Station
	Reason       string
	RequestedAt  time.Time
}
