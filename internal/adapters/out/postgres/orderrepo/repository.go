package orderrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its item list.
// Associations are created in the same statement batch by GORM.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
//
// The item list is immutable after creation and is not touched. Passes are
// upserted, their recorded tallies replaced wholesale (the bypassed
// completion flow rewrites them), and bypass requests upserted to pick up
// admin resolutions.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"order_number":   dto.OrderNumber,
		"customer_name":  dto.CustomerName,
		"payment_status": dto.PaymentStatus,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for i := range dto.WorkProcesses {
		wp := dto.WorkProcesses[i]

		if err := db.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&wp).Error; err != nil {
			return err
		}

		if err := db.Where("work_process_id = ?", wp.ID).
			Delete(&WorkProcessItemDTO{}).Error; err != nil {
			return err
		}

		if len(wp.RecordedItems) > 0 {
			recorded := wp.RecordedItems
			if err := db.Create(&recorded).Error; err != nil {
				return err
			}
		}

		if wp.Bypass != nil {
			if err := db.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(wp.Bypass).Error; err != nil {
				return err
			}
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full aggregate tree.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNumber retrieves an order by its human-readable order number.
func (r *GormOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.preloaded(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBypassRequest retrieves the order owning the given bypass request.
func (r *GormOrderRepository) GetByBypassRequest(
	ctx context.Context,
	bypassRequestID kernel.UUID,
) (*order.Order, error) {
	if err := bypassRequestID.Validate(); err != nil {
		return nil, err
	}

	var bypassDTO BypassRequestDTO
	if err := r.db.WithContext(ctx).
		First(&bypassDTO, "id = ?", bypassRequestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bypass request", bypassRequestID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(bypassDTO.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("WorkProcesses").
		Preload("WorkProcesses.RecordedItems").
		Preload("WorkProcesses.Bypass")
}
