package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads the full order view from the database.
// The per-station states are derived from the latest pass rows, so the view
// always reflects exactly what was persisted.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for full order view queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and assembles the order view.
// Returns errs.ObjectNotFoundError if no order exists with the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if response.Items, err = h.fetchItems(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	if response.WorkProcesses, err = h.fetchWorkProcesses(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	response.States = deriveStates(response.WorkProcesses)
	return response, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			payment_status,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var response GetOrderQueryResponse
	var id uuid.UUID
	var paymentStatus int

	if err = rows.Scan(
		&id,
		&response.OrderNumber,
		&response.CustomerName,
		&paymentStatus,
		&response.CreatedAt,
	); err != nil {
		return nil, err
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	response.ID = responseID
	response.PaymentStatus = order.PaymentStatus(paymentStatus)

	return &response, nil
}

func (h GetOrderQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			laundry_item_id,
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.LaundryItemID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderQueryHandler) fetchWorkProcesses(
	ctx context.Context,
	orderID kernel.UUID,
) ([]WorkProcessResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			wp.id,
			wp.station,
			wp.employee_id,
			wp.started_at,
			wp.completed_at,
			wp.notes,
			b.id,
			b.reason,
			b.status,
			b.admin_note,
			b.requested_at
		FROM work_processes wp
		LEFT JOIN bypass_requests b ON b.work_process_id = wp.id
		WHERE wp.order_id = ?
		ORDER BY wp.seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workProcesses := make([]WorkProcessResponse, 0)
	for rows.Next() {
		wp, scanErr := scanWorkProcessRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		workProcesses = append(workProcesses, wp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range workProcesses {
		recorded, recErr := h.fetchRecordedItems(ctx, workProcesses[i].ID)
		if recErr != nil {
			return nil, recErr
		}
		workProcesses[i].RecordedItems = recorded
	}

	return workProcesses, nil
}

func scanWorkProcessRow(rows *sql.Rows) (WorkProcessResponse, error) {
	var wp WorkProcessResponse
	var wpID, employeeID uuid.UUID
	var st int
	var completedAt sql.NullTime
	var notes sql.NullString
	var bypassID uuid.NullUUID
	var bypassReason, bypassNote sql.NullString
	var bypassStatus sql.NullInt64
	var bypassRequestedAt sql.NullTime

	if err := rows.Scan(
		&wpID,
		&st,
		&employeeID,
		&wp.StartedAt,
		&completedAt,
		&notes,
		&bypassID,
		&bypassReason,
		&bypassStatus,
		&bypassNote,
		&bypassRequestedAt,
	); err != nil {
		return WorkProcessResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(wpID[:])
	if err != nil {
		return WorkProcessResponse{}, err
	}
	wp.ID = id

	empID, err := kernel.UUIDFromBytes(employeeID[:])
	if err != nil {
		return WorkProcessResponse{}, err
	}
	wp.EmployeeID = empID
	wp.Station = station.Station(st)

	if completedAt.Valid {
		at := completedAt.Time
		wp.CompletedAt = &at
	}
	if notes.Valid {
		n := notes.String
		wp.Notes = &n
	}

	if bypassID.Valid {
		bID, bErr := kernel.UUIDFromBytes(bypassID.UUID[:])
		if bErr != nil {
			return WorkProcessResponse{}, bErr
		}

		bypass := &BypassRequestResponse{
			ID:          bID,
			Reason:      bypassReason.String,
			Status:      order.BypassStatus(bypassStatus.Int64),
			RequestedAt: bypassRequestedAt.Time,
		}
		if bypassNote.Valid {
			note := bypassNote.String
			bypass.AdminNote = &note
		}
		wp.Bypass = bypass
	}

	return wp, nil
}

func (h GetOrderQueryHandler) fetchRecordedItems(
	ctx context.Context,
	workProcessID kernel.UUID,
) ([]RecordedItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			laundry_item_id,
			quantity
		FROM work_process_items
		WHERE work_process_id = ?
		ORDER BY id
	`, workProcessID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recorded := make([]RecordedItemResponse, 0)
	for rows.Next() {
		var item RecordedItemResponse
		if err = rows.Scan(&item.LaundryItemID, &item.Quantity); err != nil {
			return nil, err
		}
		recorded = append(recorded, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recorded, nil
}

// deriveStates computes every station's workflow state from the fetched pass
// rows. The pass rows arrive ordered by seq, so the last row per station is
// the deciding one.
func deriveStates(workProcesses []WorkProcessResponse) map[station.Station]order.StationState {
	latest := make(map[station.Station]*WorkProcessResponse)
	for i := range workProcesses {
		latest[workProcesses[i].Station] = &workProcesses[i]
	}

	states := make(map[station.Station]order.StationState, len(station.AllStations()))
	for _, st := range station.AllStations() {
		wp, ok := latest[st]
		if !ok {
			states[st] = order.StateVerify
			continue
		}

		var bypassStatus order.BypassStatus
		if wp.Bypass != nil {
			bypassStatus = wp.Bypass.Status
		}
		states[st] = order.DerivePassState(wp.Bypass != nil, bypassStatus, wp.CompletedAt != nil)
	}

	return states
}
