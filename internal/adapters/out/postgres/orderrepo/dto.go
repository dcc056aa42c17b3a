// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index so customer-facing references stay
// unambiguous across the worker and admin portals.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"size:64;uniqueIndex"`
	CustomerName  string
	PaymentStatus int
	CreatedAt     time.Time

	Items         []OrderItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	WorkProcesses []WorkProcessDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a line of the order's immutable item list.
// These rows are the verification baseline and are written once at creation.
type OrderItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	LaundryItemID int64
	Name          string
	Quantity      int
	UnitPrice     int64
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// WorkProcessDTO represents a station pass. Seq preserves the order in which
// passes were opened so the latest pass per station can be restored reliably
// even when timestamps collide.
type WorkProcessDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index:idx_work_processes_order_station"`
	Station     int       `gorm:"index:idx_work_processes_order_station"`
	EmployeeID  uuid.UUID `gorm:"type:uuid"`
	Seq         int
	StartedAt   time.Time
	CompletedAt *time.Time
	Notes       *string

	RecordedItems []WorkProcessItemDTO `gorm:"foreignKey:WorkProcessID;constraint:OnDelete:CASCADE"`
	Bypass        *BypassRequestDTO    `gorm:"foreignKey:WorkProcessID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for work process entities.
func (WorkProcessDTO) TableName() string {
	return "work_processes"
}

// WorkProcessItemDTO represents one line of the tally recorded at a pass.
type WorkProcessItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	WorkProcessID uuid.UUID `gorm:"type:uuid;index"`
	LaundryItemID int64
	Quantity      int
}

// TableName specifies the database table name for recorded tally lines.
func (WorkProcessItemDTO) TableName() string {
	return "work_process_items"
}

// BypassRequestDTO represents an escalated verification mismatch. OrderID is
// denormalized so the admin inbox and resolution flows can reach the owning
// order without joining through work_processes.
type BypassRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkProcessID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Reason        string
	Status        int `gorm:"index"`
	AdminNote     *string
	RequestedAt   time.Time
}

// TableName specifies the database table name for bypass request entities.
func (BypassRequestDTO) TableName() string {
	return "bypass_requests"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the full aggregate tree: items, passes, recorded tallies, and bypass requests.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:       orderID,
			LaundryItemID: item.LaundryItemID(),
			Name:          item.Name(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().Amount(),
		})
	}

	workProcesses := make([]WorkProcessDTO, 0, len(aggregate.WorkProcesses()))
	for seq, wp := range aggregate.WorkProcesses() {
		workProcesses = append(workProcesses, workProcessFromDomain(orderID, seq, wp))
	}

	return OrderDTO{
		ID:            orderID,
		OrderNumber:   aggregate.OrderNumber(),
		CustomerName:  aggregate.CustomerName(),
		PaymentStatus: int(aggregate.PaymentStatus()),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
		WorkProcesses: workProcesses,
	}
}

func workProcessFromDomain(orderID uuid.UUID, seq int, wp *order.WorkProcess) WorkProcessDTO {
	wpID := wp.ID().Bytes()

	recorded := make([]WorkProcessItemDTO, 0, len(wp.RecordedItems()))
	for _, item := range wp.RecordedItems() {
		recorded = append(recorded, WorkProcessItemDTO{
			WorkProcessID: wpID,
			LaundryItemID: item.LaundryItemID,
			Quantity:      item.Quantity,
		})
	}

	var bypass *BypassRequestDTO
	if b := wp.Bypass(); b != nil {
		bypass = &BypassRequestDTO{
			ID:            b.ID().Bytes(),
			WorkProcessID: wpID,
			OrderID:       orderID,
			Reason:        b.Reason(),
			Status:        int(b.Status()),
			AdminNote:     b.AdminNote(),
			RequestedAt:   b.RequestedAt(),
		}
	}

	return WorkProcessDTO{
		ID:            wpID,
		OrderID:       orderID,
		Station:       int(wp.Station()),
		EmployeeID:    wp.EmployeeID().Bytes(),
		Seq:           seq,
		StartedAt:     wp.StartedAt(),
		CompletedAt:   wp.CompletedAt(),
		Notes:         wp.Notes(),
		RecordedItems: recorded,
		Bypass:        bypass,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including passes and bypass requests using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewOrderItem(itemDTO.LaundryItemID, itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	wpDTOs := append([]WorkProcessDTO(nil), dto.WorkProcesses...)
	sort.Slice(wpDTOs, func(i, j int) bool { return wpDTOs[i].Seq < wpDTOs[j].Seq })

	workProcesses := make([]*order.WorkProcess, 0, len(wpDTOs))
	for _, wpDTO := range wpDTOs {
		wp, wpErr := workProcessToDomain(wpDTO)
		if wpErr != nil {
			return nil, wpErr
		}
		workProcesses = append(workProcesses, wp)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CustomerName,
		items,
		order.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
		workProcesses,
	)
}

func workProcessToDomain(dto WorkProcessDTO) (*order.WorkProcess, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	recorded := make([]order.RecordedItem, 0, len(dto.RecordedItems))
	for _, itemDTO := range dto.RecordedItems {
		recorded = append(recorded, order.RecordedItem{
			LaundryItemID: itemDTO.LaundryItemID,
			Quantity:      itemDTO.Quantity,
		})
	}

	var bypass *order.BypassRequest
	if dto.Bypass != nil {
		bypassID, bypassErr := kernel.UUIDFromBytes(dto.Bypass.ID[:])
		if bypassErr != nil {
			return nil, bypassErr
		}

		bypass, bypassErr = order.RestoreBypassRequest(
			bypassID,
			dto.Bypass.Reason,
			order.BypassStatus(dto.Bypass.Status),
			dto.Bypass.AdminNote,
			dto.Bypass.RequestedAt,
		)
		if bypassErr != nil {
			return nil, bypassErr
		}
	}

	return order.RestoreWorkProcess(
		id,
		station.Station(dto.Station),
		employeeID,
		dto.StartedAt,
		dto.CompletedAt,
		dto.Notes,
		recorded,
		bypass,
	)
}
