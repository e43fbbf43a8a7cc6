// Package pricing computes order totals from cart lines and authoritative
// price snapshots. All monetary arithmetic is in integer minor currency
// units; money never passes through a float.
package pricing

import (
	"math"

	"github.com/shopverse/storefront/internal/models"
)

// Quote is the result of pricing a cart. Amounts are in minor units.
type Quote struct {
	Subtotal       int64
	DiscountAmount int64
	Total          int64

	// InvalidProductIDs lists lines that contributed nothing because their
	// product was missing from or inactive in the snapshot set.
	InvalidProductIDs []string
}

// ComputeTotal prices the given lines against the snapshot map and applies
// the discount, if any. Lines with no active snapshot are skipped and
// reported. The total never goes below zero; a fixed discount larger than
// the subtotal caps at the subtotal.
func ComputeTotal(lines []models.CartLine, prices map[string]models.PriceSnapshot, discount *models.DiscountResult) Quote {
	var quote Quote

	for _, line := range lines {
		snapshot, ok := prices[line.ProductID]
		if !ok || !snapshot.Active {
			quote.InvalidProductIDs = append(quote.InvalidProductIDs, line.ProductID)
			continue
		}

		quote.Subtotal += snapshot.UnitAmount * int64(line.Quantity)
	}

	quote.DiscountAmount = discountAmount(quote.Subtotal, discount)
	quote.Total = quote.Subtotal - quote.DiscountAmount

	if quote.Total < 0 {
		quote.Total = 0
	}

	return quote
}

func discountAmount(subtotal int64, discount *models.DiscountResult) int64 {
	if discount == nil || !discount.Valid {
		return 0
	}

	var amount int64

	switch discount.Kind {
	case models.DiscountPercentage:
		// The percentage itself may be fractional (e.g. 12.5%), so it is
		// converted to integer basis points before touching the subtotal.
		basisPoints := int64(math.Round(discount.Amount * 100))
		amount = (subtotal*basisPoints + 5000) / 10000
	case models.DiscountFixed:
		amount = int64(math.Round(discount.Amount))
	default:
		return 0
	}

	if amount < 0 {
		return 0
	}

	if amount > subtotal {
		return subtotal
	}

	return amount
}
