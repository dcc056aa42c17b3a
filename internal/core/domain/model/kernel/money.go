package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (e.g. cents). It is used for laundry item unit prices and computed
// line totals on an order.
//
// Money is immutable: arithmetic methods return new values. The zero value
// represents a zero amount and is valid, so prices restored from persistence
// or produced by summation never need special casing.
//
// Example usage:
//
//	unitPrice, err := kernel.NewMoney(1500)
//	if err != nil {
//	    return err
//	}
//
//	lineTotal, err := unitPrice.Multiply(3)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(lineTotal.Amount()) // 4500
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor currency units.
// Negative amounts are rejected: the domain never deals in refunds or
// credits at the order-item level.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Multiply returns the Money value scaled by a non-negative quantity.
// Returns an error for negative quantities.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	return Money{amount: m.amount * int64(quantity)}, nil
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted in major units with two decimals,
// e.g. "15.00" for an amount of 1500.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
