package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"laundry/internal/core/domain/model/order"
)

// ErrQuantityMismatch is returned when the tally a worker entered does not
// match the order's original item list. The mismatch is the trigger for the
// bypass workflow: callers surface it as a typed conflict so the worker can
// escalate to an admin instead of retrying blindly.
var ErrQuantityMismatch = errors.New("verified quantities do not match the order")

// VerificationRow is one line the worker entered on the verification sheet:
// an item-type label and a quantity, both as free text. Rows are ephemeral
// input; they are never persisted directly, only translated into recorded
// items.
type VerificationRow struct {
	Label    string
	Quantity string
}

// VerificationSheet is a domain service that translates the rows a worker
// entered at a station into recorded items and checks them against the
// order's original item list.
//
// Normalization rules:
//   - Rows missing a label or a quantity are silently dropped; a half-filled
//     row is treated as never entered, not as an error
//   - Labels resolve to a laundry item ID by exact match against the order's
//     item catalog; an unmatched label resolves to the sentinel ID 0 and is
//     caught by the mismatch check rather than failing the transform
//   - Quantities parse with integer semantics; a non-numeric quantity
//     normalizes to 0 and is likewise caught by the mismatch check
//
// The sheet is a pure transform with no side effects.
//
// Example usage:
//
//	sheet := services.NewVerificationSheet([]services.VerificationRow{
//	    {Label: "Shirt", Quantity: "3"},
//	})
//	recorded, err := sheet.Verify(o)
//	if errors.Is(err, services.ErrQuantityMismatch) {
//	    // open the bypass workflow
//	}
type VerificationSheet struct {
	rows []VerificationRow
}

// NewVerificationSheet creates a verification sheet from the worker's rows.
func NewVerificationSheet(rows []VerificationRow) VerificationSheet {
	return VerificationSheet{rows: append([]VerificationRow(nil), rows...)}
}

// Rows returns a copy of the sheet's rows.
func (s VerificationSheet) Rows() []VerificationRow {
	return append([]VerificationRow(nil), s.rows...)
}

// Normalize translates the sheet into recorded items against the given
// order's item catalog. One recorded item is produced per surviving row, so
// per-item sums equal the sums of the quantities the worker entered.
func (s VerificationSheet) Normalize(o *order.Order) []order.RecordedItem {
	catalog := make(map[string]int64, len(o.Items()))
	for _, item := range o.Items() {
		catalog[item.Name()] = item.LaundryItemID()
	}

	recorded := make([]order.RecordedItem, 0, len(s.rows))
	for _, row := range s.rows {
		label := strings.TrimSpace(row.Label)
		quantity := strings.TrimSpace(row.Quantity)
		if label == "" || quantity == "" {
			continue
		}

		// unmatched labels keep the sentinel ID 0
		itemID := catalog[label]

		// non-numeric quantities normalize to 0
		count, _ := strconv.Atoi(quantity)

		recorded = append(recorded, order.RecordedItem{
			LaundryItemID: itemID,
			Quantity:      count,
		})
	}

	return recorded
}

// Verify normalizes the sheet and checks the per-item sums against the
// order's original quantities.
//
// Returns:
//   - the recorded items when every item's summed quantity equals the
//     original order quantity for that item
//   - ErrQuantityMismatch (wrapped with the first offending item) when any
//     sum differs, an unmatched label produced a sentinel recorded item, or
//     an original item was not counted at all
func (s VerificationSheet) Verify(o *order.Order) ([]order.RecordedItem, error) {
	recorded := s.Normalize(o)

	counted := make(map[int64]int, len(recorded))
	for _, item := range recorded {
		counted[item.LaundryItemID] += item.Quantity
	}

	if sentinel, ok := counted[0]; ok {
		return nil, fmt.Errorf("%w: %d pieces recorded against an unknown item", ErrQuantityMismatch, sentinel)
	}

	for _, item := range o.Items() {
		if counted[item.LaundryItemID()] != item.Quantity() {
			return nil, fmt.Errorf("%w: %s expected %d, counted %d",
				ErrQuantityMismatch, item.Name(), item.Quantity(), counted[item.LaundryItemID()])
		}
		delete(counted, item.LaundryItemID())
	}

	if len(counted) > 0 {
		return nil, fmt.Errorf("%w: counted items not present on the order", ErrQuantityMismatch)
	}

	return recorded, nil
}
