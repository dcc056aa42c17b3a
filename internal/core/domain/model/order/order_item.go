package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
	// created through the NewOrderItem factory method.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

	// ErrItemNameIsRequired is returned when an order item is created without a
	// laundry item name.
	ErrItemNameIsRequired = errors.New("item name is required")
)

// OrderItem is one line of the order as placed by the customer: a laundry
// item type, the quantity handed in, and the unit price. The item list is
// immutable once the order is placed and serves as the verification baseline
// at every station.
//
// The laundry item ID references the outlet's item catalog. Together with the
// name it forms the per-order catalog against which worker-entered labels are
// resolved during verification.
type OrderItem struct {
	// laundryItemID references the laundry item type in the outlet catalog
	laundryItemID int64

	// name is the display label of the laundry item type (e.g. "Shirt")
	name string

	// quantity is the number of pieces handed in (must be positive)
	quantity int

	// unitPrice is the price per piece
	unitPrice kernel.Money

	// isConstructed ensures the item was created via NewOrderItem
	isConstructed bool
}

// NewOrderItem creates a new OrderItem with validation.
//
// Parameters:
//   - laundryItemID: Catalog reference of the laundry item type (must be positive)
//   - name: Display label of the item type (must not be empty)
//   - quantity: Number of pieces (must be positive)
//   - unitPrice: Price per piece
//
// Returns:
//   - OrderItem: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrderItem(laundryItemID int64, name string, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	if laundryItemID <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"laundry item id is invalid",
			fmt.Errorf("%d is not greater than 0", laundryItemID),
		)
	}

	if name == "" {
		return OrderItem{}, ErrItemNameIsRequired
	}

	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return OrderItem{
		laundryItemID: laundryItemID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the OrderItem was properly constructed through NewOrderItem.
func (i OrderItem) Validate() error {
	if !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// LaundryItemID returns the catalog reference of the laundry item type.
func (i OrderItem) LaundryItemID() int64 {
	return i.laundryItemID
}

// Name returns the display label of the laundry item type.
func (i OrderItem) Name() string {
	return i.name
}

// Quantity returns the number of pieces handed in.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per piece.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns the computed total for the line (unit price x quantity).
func (i OrderItem) LineTotal() kernel.Money {
	// quantity is validated positive at construction, Multiply cannot fail
	total, _ := i.unitPrice.Multiply(i.quantity)
	return total
}
