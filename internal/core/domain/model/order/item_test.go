package order_test

import (
	"testing"

	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid parameters", func(t *testing.T) {
		item, err := order.NewItem("med-42", "Paracetamol 500mg", "Acme Pharma", 12.50, 3)

		require.NoError(t, err)
		assert.Equal(t, "med-42", item.ProductID())
		assert.Equal(t, "Paracetamol 500mg", item.Name())
		assert.Equal(t, "Acme Pharma", item.Manufacturer())
		assert.InDelta(t, 12.50, item.UnitPrice(), 1e-9)
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("should require product id", func(t *testing.T) {
		_, err := order.NewItem("", "Paracetamol 500mg", "Acme Pharma", 12.50, 3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := order.NewItem("med-42", "", "Acme Pharma", 12.50, 3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require manufacturer", func(t *testing.T) {
		_, err := order.NewItem("med-42", "Paracetamol 500mg", "", 12.50, 3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non positive unit price", func(t *testing.T) {
		for _, price := range []float64{0, -0.01, -100} {
			_, err := order.NewItem("med-42", "Paracetamol 500mg", "Acme Pharma", price, 3)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject quantity out of range", func(t *testing.T) {
		for _, quantity := range []int{0, -1, 10001} {
			_, err := order.NewItem("med-42", "Paracetamol 500mg", "Acme Pharma", 12.50, quantity)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := order.NewItem("", "", "", 0, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should pass for constructed item", func(t *testing.T) {
		item, err := order.NewItem("med-42", "Paracetamol 500mg", "Acme Pharma", 12.50, 1)
		require.NoError(t, err)

		require.NoError(t, item.Validate())
	})

	t.Run("should fail for zero value item", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestItem_Subtotal(t *testing.T) {
	item, err := order.NewItem("med-42", "Paracetamol 500mg", "Acme Pharma", 12.50, 4)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, item.Subtotal(), 1e-9)
}
