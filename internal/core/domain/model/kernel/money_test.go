package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from valid amount", func(t *testing.T) {
		m, err := kernel.NewMoney(1500)

		require.NoError(t, err)
		assert.Equal(t, int64(1500), m.Amount())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "amount is invalid")
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum two amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000)
		b, _ := kernel.NewMoney(250)

		sum := a.Add(b)

		assert.Equal(t, int64(1250), sum.Amount())
	})

	t.Run("should not modify operands", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000)
		b, _ := kernel.NewMoney(250)

		_ = a.Add(b)

		assert.Equal(t, int64(1000), a.Amount())
		assert.Equal(t, int64(250), b.Amount())
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("should scale amount by quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(1500)

		total, err := unitPrice.Multiply(3)

		require.NoError(t, err)
		assert.Equal(t, int64(4500), total.Amount())
	})

	t.Run("should return zero for zero quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(1500)

		total, err := unitPrice.Multiply(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Amount())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(1500)

		_, err := unitPrice.Multiply(-2)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should return true for equal amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(700)
		b, _ := kernel.NewMoney(700)

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("should return false for different amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(700)
		b, _ := kernel.NewMoney(800)

		assert.False(t, a.IsEqual(b))
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("should format minor units with two decimals", func(t *testing.T) {
		testCases := []struct {
			amount   int64
			expected string
		}{
			{0, "0.00"},
			{5, "0.05"},
			{1500, "15.00"},
			{123456, "1234.56"},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoney(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		}
	})
}
