package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationQueueQueryHandler reads a station's queue from the database.
// The latest pass per order decides the derived state; orders whose station
// is already completed are excluded.
type GetStationQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetStationQueueQueryHandler creates a handler for station queue queries.
// Requires a GORM database connection for query execution.
func NewGetStationQueueQueryHandler(db *gorm.DB) GetStationQueueQueryHandler {
	return GetStationQueueQueryHandler{db: db}
}

// Handle executes the query to list a station's pending orders.
// Results are sorted by placement time for a stable first-in queue.
func (h GetStationQueueQueryHandler) Handle(
	ctx context.Context,
	query GetStationQueueQuery,
) ([]GetStationQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.customer_name,
			o.created_at,
			wp.id,
			wp.completed_at,
			b.status
		FROM orders o
		LEFT JOIN LATERAL (
			SELECT id, completed_at
			FROM work_processes
			WHERE order_id = o.id AND station = ?
			ORDER BY seq DESC
			LIMIT 1
		) wp ON true
		LEFT JOIN bypass_requests b ON b.work_process_id = wp.id
		ORDER BY o.created_at, o.id
	`, int(query.Station())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queue := make([]GetStationQueueQueryResponse, 0)
	for rows.Next() {
		var entry GetStationQueueQueryResponse
		var id uuid.UUID
		var passID uuid.NullUUID
		var completedAt sql.NullTime
		var bypassStatus sql.NullInt64

		if err = rows.Scan(
			&id,
			&entry.OrderNumber,
			&entry.CustomerName,
			&entry.CreatedAt,
			&passID,
			&completedAt,
			&bypassStatus,
		); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entry.State = order.StateVerify
		if passID.Valid {
			entry.State = order.DerivePassState(
				bypassStatus.Valid,
				order.BypassStatus(bypassStatus.Int64),
				completedAt.Valid,
			)
		}

		if entry.State == order.StateCompleted {
			continue
		}
		queue = append(queue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
