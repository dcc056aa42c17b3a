// Package ports defines repository interfaces for the laundry domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities with
// their complete state: items, work processes, and bypass requests.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including newly
	// opened work process passes and bypass request resolutions.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with nested items, work processes, and
	// bypass requests.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNumber retrieves an order aggregate by its human-readable
	// order number. Returns the same complete aggregate as Get.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetByBypassRequest retrieves the order aggregate owning the given
	// bypass request. Used by the admin resolution flow, which references
	// requests by their own identifier rather than through an order.
	GetByBypassRequest(ctx context.Context, bypassRequestID kernel.UUID) (*order.Order, error)
}
