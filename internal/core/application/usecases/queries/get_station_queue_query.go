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
	ErrGetStationQueueQueryIsNotConstructed = errors.New(
		"GetStationQueueQuery must be created via NewGetStationQueueQuery constructor",
	)
)

// GetStationQueueQuery lists the orders a station still has work on: every
// order whose derived state at the station is not completed. This backs the
// worker portal's station list page.
type GetStationQueueQuery struct {
	station station.Station

	guard guard.ConstructorGuard
}

// NewGetStationQueueQuery creates a query for one station's queue.
// Returns an error if the station is invalid.
func NewGetStationQueueQuery(st station.Station) (GetStationQueueQuery, error) {
	if err := st.Validate(); err != nil {
		return GetStationQueueQuery{}, err
	}

	return GetStationQueueQuery{
		station: st,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStationQueueQueryIsNotConstructed if validation fails.
func (q GetStationQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetStationQueueQueryIsNotConstructed)
}

// Station returns the station whose queue is being read.
func (q GetStationQueueQuery) Station() station.Station {
	return q.station
}

// GetStationQueueQueryResponse is one order in a station's queue.
type GetStationQueueQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerName string
	CreatedAt    time.Time
	State        order.StationState
}
