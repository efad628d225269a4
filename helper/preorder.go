package helper

import (
	"math"

	"restaurant_manager/constants"
	"restaurant_manager/model"
)

// ComputeTotals fills in line totals and the ledger sums. Prices come from
// the snapshots already captured on the items, never re-read from the menu.
func ComputeTotals(items []model.PreOrderItem) (subtotal, tax, grandTotal float64, out []model.PreOrderItem) {
	out = make([]model.PreOrderItem, len(items))
	for i, item := range items {
		item.LineTotal = item.Price * float64(item.Quantity)
		subtotal += item.LineTotal
		out[i] = item
	}
	tax = round2(subtotal * constants.TaxRate)
	grandTotal = round2(subtotal + tax)
	subtotal = round2(subtotal)
	return subtotal, tax, grandTotal, out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
