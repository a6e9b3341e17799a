package greenbuild

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleCart() []LineItem {
	return []LineItem{
		{DesignID: 1, Title: "Solar Courtyard House", UnitPrice: 299, OriginalUnitPrice: 399, Quantity: 1},
		{DesignID: 2, Title: "Bamboo Loft", UnitPrice: 449, OriginalUnitPrice: 549, Quantity: 1},
	}
}

func TestCalculateTotals(t *testing.T) {
	totals := CalculateTotals(sampleCart(), nil)

	require.Equal(t, "748.00", totals.Subtotal.StringFixed(2))
	require.Equal(t, "200.00", totals.Savings.StringFixed(2))
	require.Equal(t, "0.00", totals.PromoDiscount.StringFixed(2))
	require.Equal(t, "748.00", totals.Total.StringFixed(2))
}

func TestCalculateTotalsWithPromo(t *testing.T) {
	promo, found := LookupPromo("ECO15")
	require.True(t, found)

	totals := CalculateTotals(sampleCart(), &promo)

	require.Equal(t, "112.20", totals.PromoDiscount.StringFixed(2))
	require.Equal(t, "635.80", totals.Total.StringFixed(2))
	// Savings are unaffected by the promo.
	require.Equal(t, "200.00", totals.Savings.StringFixed(2))
}

func TestCalculateTotalsQuantities(t *testing.T) {
	items := []LineItem{
		{DesignID: 1, UnitPrice: 100, OriginalUnitPrice: 120, Quantity: 3},
	}

	totals := CalculateTotals(items, nil)
	require.Equal(t, "300.00", totals.Subtotal.StringFixed(2))
	require.Equal(t, "60.00", totals.Savings.StringFixed(2))
}

func TestCalculateTotalsIgnoresNegativeSavings(t *testing.T) {
	items := []LineItem{
		{DesignID: 1, UnitPrice: 200, OriginalUnitPrice: 150, Quantity: 1},
	}

	totals := CalculateTotals(items, nil)
	require.Equal(t, "0.00", totals.Savings.StringFixed(2))
	require.Equal(t, "200.00", totals.Subtotal.StringFixed(2))
}

func TestCalculateTotalsEmptyCart(t *testing.T) {
	promo, _ := LookupPromo("GREEN20")
	totals := CalculateTotals(nil, &promo)

	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.PromoDiscount.IsZero())
	require.True(t, totals.Total.IsZero())
}

func TestLookupPromoCaseInsensitive(t *testing.T) {
	for _, code := range []string{"GREEN20", "green20", "Green20", "  green20  "} {
		promo, found := LookupPromo(code)
		require.True(t, found, code)
		require.Equal(t, "GREEN20", promo.Code)
		require.Equal(t, int64(20), promo.DiscountPercent)
	}
}

func TestLookupPromoUnknownCode(t *testing.T) {
	_, found := LookupPromo("SAVE50")
	require.False(t, found)
}
