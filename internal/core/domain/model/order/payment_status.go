package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order.
// Payment is settled outside the station workflow; the status is carried on
// the order as reference data for the worker and admin views.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates the order has not been paid yet.
	PaymentPending

	// PaymentPaid indicates the order has been paid in full.
	PaymentPaid
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their string representations.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "UNKNOWN",
		PaymentPending: "PENDING",
		PaymentPaid:    "PAID",
	}
}

// getValidPaymentStatusStrings returns a map of only valid PaymentStatus values.
func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "PENDING",
		PaymentPaid:    "PAID",
	}
}

// Validate checks if the PaymentStatus value is valid.
//
// Valid statuses are: PaymentPending, PaymentPaid.
// PaymentUnknown (0) and any other values are invalid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
