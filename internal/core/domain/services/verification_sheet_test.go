package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1500)
	require.NoError(t, err)

	shirt, err := order.NewOrderItem(7, "Shirt", 3, price)
	require.NoError(t, err)

	towel, err := order.NewOrderItem(8, "Towel", 2, price)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"LND-20260831-AB12CD34",
		"Jane Roe",
		[]order.OrderItem{shirt, towel},
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestVerificationSheetNormalize(t *testing.T) {
	t.Run("should resolve labels against the order catalog", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "3"},
			{Label: "Towel", Quantity: "2"},
		})

		recorded := sheet.Normalize(testOrder(t))

		assert.Equal(t, []order.RecordedItem{
			{LaundryItemID: 7, Quantity: 3},
			{LaundryItemID: 8, Quantity: 2},
		}, recorded)
	})

	t.Run("should drop half-filled rows", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "3"},
			{Label: "Towel", Quantity: "  "},
			{Label: "", Quantity: "2"},
		})

		recorded := sheet.Normalize(testOrder(t))

		assert.Equal(t, []order.RecordedItem{{LaundryItemID: 7, Quantity: 3}}, recorded)
	})

	t.Run("should keep sentinel zero for unmatched label", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Curtain", Quantity: "1"},
		})

		recorded := sheet.Normalize(testOrder(t))

		assert.Equal(t, []order.RecordedItem{{LaundryItemID: 0, Quantity: 1}}, recorded)
	})

	t.Run("should normalize non-numeric quantity to zero", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "three"},
		})

		recorded := sheet.Normalize(testOrder(t))

		assert.Equal(t, []order.RecordedItem{{LaundryItemID: 7, Quantity: 0}}, recorded)
	})

	t.Run("should trim labels and quantities", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "  Shirt  ", Quantity: " 3 "},
		})

		recorded := sheet.Normalize(testOrder(t))

		assert.Equal(t, []order.RecordedItem{{LaundryItemID: 7, Quantity: 3}}, recorded)
	})

	t.Run("should keep one recorded item per surviving row", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "1"},
			{Label: "Shirt", Quantity: "2"},
		})

		recorded := sheet.Normalize(testOrder(t))

		assert.Equal(t, []order.RecordedItem{
			{LaundryItemID: 7, Quantity: 1},
			{LaundryItemID: 7, Quantity: 2},
		}, recorded)
	})
}

func TestVerificationSheetVerify(t *testing.T) {
	t.Run("should pass when sums match the order", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "3"},
			{Label: "Towel", Quantity: "2"},
		})

		recorded, err := sheet.Verify(testOrder(t))

		require.NoError(t, err)
		assert.Len(t, recorded, 2)
	})

	t.Run("should pass with quantities split across rows", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "1"},
			{Label: "Shirt", Quantity: "2"},
			{Label: "Towel", Quantity: "2"},
		})

		recorded, err := sheet.Verify(testOrder(t))

		require.NoError(t, err)
		assert.Len(t, recorded, 3)
	})

	t.Run("should fail when a quantity differs", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "2"},
			{Label: "Towel", Quantity: "2"},
		})

		recorded, err := sheet.Verify(testOrder(t))

		assert.ErrorIs(t, err, services.ErrQuantityMismatch)
		assert.Contains(t, err.Error(), "Shirt")
		assert.Nil(t, recorded)
	})

	t.Run("should fail when an item was not counted", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "3"},
		})

		recorded, err := sheet.Verify(testOrder(t))

		assert.ErrorIs(t, err, services.ErrQuantityMismatch)
		assert.Nil(t, recorded)
	})

	t.Run("should fail when an unknown label was counted", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "3"},
			{Label: "Towel", Quantity: "2"},
			{Label: "Curtain", Quantity: "1"},
		})

		recorded, err := sheet.Verify(testOrder(t))

		assert.ErrorIs(t, err, services.ErrQuantityMismatch)
		assert.Contains(t, err.Error(), "unknown item")
		assert.Nil(t, recorded)
	})

	t.Run("should fail on empty sheet", func(t *testing.T) {
		sheet := services.NewVerificationSheet(nil)

		recorded, err := sheet.Verify(testOrder(t))

		assert.ErrorIs(t, err, services.ErrQuantityMismatch)
		assert.Nil(t, recorded)
	})
}

func TestVerificationSheetRows(t *testing.T) {
	t.Run("should return a copy of the rows", func(t *testing.T) {
		sheet := services.NewVerificationSheet([]services.VerificationRow{
			{Label: "Shirt", Quantity: "3"},
		})

		rows := sheet.Rows()
		rows[0].Quantity = "99"

		assert.Equal(t, "3", sheet.Rows()[0].Quantity)
	})
}
