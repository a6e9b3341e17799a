package greenbuild

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one purchasable design entry in the cart. Prices are
// canonical USD.
type LineItem struct {
	DesignID          uint    `json:"design_id"`
	Title             string  `json:"title"`
	PlanNumber        string  `json:"plan_number"`
	VariantLabel      string  `json:"variant_label"`
	UnitPrice         float64 `json:"unit_price"`
	OriginalUnitPrice float64 `json:"original_unit_price"`
	Quantity          uint    `json:"quantity"`
}

// Promo is a percentage discount off the cart subtotal. At most one applies
// at a time; applying a new code replaces the old one.
type Promo struct {
	Code            string
	DiscountPercent int64
}

var promoTable = map[string]int64{
	"GREEN20": 20,
	"ECO15":   15,
}

// LookupPromo matches codes case-insensitively against the fixed table.
func LookupPromo(code string) (Promo, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	percent, found := promoTable[normalized]
	if !found {
		return Promo{}, false
	}
	return Promo{Code: normalized, DiscountPercent: percent}, true
}

type Totals struct {
	Subtotal      decimal.Decimal
	Savings       decimal.Decimal
	PromoDiscount decimal.Decimal
	Total         decimal.Decimal
}

// CalculateTotals recomputes everything from scratch on every call; nothing
// is cached, so totals can never drift from the line items.
func CalculateTotals(items []LineItem, promo *Promo) Totals {
	subtotal := decimal.Zero
	savings := decimal.Zero

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		price := decimal.NewFromFloat(item.UnitPrice)
		original := decimal.NewFromFloat(item.OriginalUnitPrice)

		subtotal = subtotal.Add(price.Mul(qty))

		// Savings are informational only; negative deltas are not counted.
		if original.GreaterThan(price) {
			savings = savings.Add(original.Sub(price).Mul(qty))
		}
	}

	discount := decimal.Zero
	if promo != nil {
		discount = subtotal.
			Mul(decimal.NewFromInt(promo.DiscountPercent)).
			Div(decimal.NewFromInt(100))
	}

	return Totals{
		Subtotal:      subtotal,
		Savings:       savings,
		PromoDiscount: discount,
		Total:         subtotal.Sub(discount),
	}
}
