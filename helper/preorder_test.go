package helper

import (
	"testing"

	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []model.PreOrderItem{
		{Name: "Grilled salmon", Price: 100, Quantity: 2},
		{Name: "House salad", Price: 50, Quantity: 3},
	}

	subtotal, tax, grandTotal, out := ComputeTotals(items)

	assert.Equal(t, 350.0, subtotal)
	assert.Equal(t, 17.5, tax)
	assert.Equal(t, 367.5, grandTotal)
	assert.Equal(t, 200.0, out[0].LineTotal)
	assert.Equal(t, 150.0, out[1].LineTotal)
	// input must stay untouched
	assert.Zero(t, items[0].LineTotal)
}

func TestComputeTotalsEmpty(t *testing.T) {
	subtotal, tax, grandTotal, out := ComputeTotals(nil)
	assert.Zero(t, subtotal)
	assert.Zero(t, tax)
	assert.Zero(t, grandTotal)
	assert.Empty(t, out)
}

func TestComputeTotalsRounding(t *testing.T) {
	items := []model.PreOrderItem{{Name: "Espresso", Price: 3.33, Quantity: 1}}
	subtotal, tax, grandTotal, _ := ComputeTotals(items)
	assert.Equal(t, 3.33, subtotal)
	assert.Equal(t, 0.17, tax)
	assert.Equal(t, 3.5, grandTotal)
}
