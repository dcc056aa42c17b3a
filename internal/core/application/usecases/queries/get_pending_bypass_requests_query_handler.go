package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingBypassRequestsQueryHandler reads the admin approval inbox from
// the database. Oldest requests come first so the longest-blocked stations
// get decided first.
type GetPendingBypassRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingBypassRequestsQueryHandler creates a handler for admin inbox queries.
// Requires a GORM database connection for query execution.
func NewGetPendingBypassRequestsQueryHandler(db *gorm.DB) GetPendingBypassRequestsQueryHandler {
	return GetPendingBypassRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending bypass requests.
func (h GetPendingBypassRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBypassRequestsQuery,
) ([]GetPendingBypassRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.order_id,
			o.order_number,
			o.customer_name,
			wp.station,
			b.reason,
			b.requested_at
		FROM bypass_requests b
		JOIN orders o ON o.id = b.order_id
		JOIN work_processes wp ON wp.id = b.work_process_id
		WHERE b.status = ?
		ORDER BY b.requested_at, b.id
	`, int(order.BypassStatusPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]GetPendingBypassRequestsQueryResponse, 0)
	for rows.Next() {
		var entry GetPendingBypassRequestsQueryResponse
		var id, orderID uuid.UUID
		var st int

		if err = rows.Scan(
			&id,
			&orderID,
			&entry.OrderNumber,
			&entry.CustomerName,
			&st,
			&entry.Reason,
			&entry.RequestedAt,
		); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = entryOrderID
		entry.Station = station.Station(st)

		pending = append(pending, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
