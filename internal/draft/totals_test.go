package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func saleDraftWithLine(t *testing.T, qty string, price float64) *Draft {
	t.Helper()
	d := New(KindSale)
	require.NoError(t, d.AddLine(Product{ID: 1, Name: "Keyboard", SellPrice: price, Stock: 100}))
	require.NoError(t, d.UpdateField(0, FieldQuantity, qty))
	return d
}

func TestPercentEditDerivesAmount(t *testing.T) {
	d := saleDraftWithLine(t, "3", 100)
	require.InDelta(t, 300, d.Totals.Subtotal, 0.0001)

	d.SetDiscount(DiscountByPercent, 10)
	require.InDelta(t, 30, d.Totals.DiscountAmount, 0.0001)
	require.InDelta(t, 270, d.Totals.GrandTotal, 0.0001)

	d.SetPaid(500)
	require.InDelta(t, 270, d.Totals.Paid, 0.0001)
	require.InDelta(t, 0, d.Totals.Due, 0.0001)
}

func TestAmountEditDerivesPercent(t *testing.T) {
	d := New(KindSale)
	require.NoError(t, d.AddLine(Product{ID: 1, Name: "Monitor", SellPrice: 100, Stock: 100}))
	for i := 0; i < 9; i++ {
		require.NoError(t, d.AddLine(Product{ID: 1, Name: "Monitor", SellPrice: 100, Stock: 100}))
	}
	require.InDelta(t, 1000, d.Totals.Subtotal, 0.0001)

	d.SetDiscount(DiscountByAmount, 150)
	require.InDelta(t, 15, d.Totals.DiscountPercent, 0.0001)
	require.InDelta(t, 850, d.Totals.GrandTotal, 0.0001)
}

func TestRepeatedEditIsIdempotent(t *testing.T) {
	d := saleDraftWithLine(t, "3", 100)
	d.SetDiscount(DiscountByPercent, 10)
	first := d.Totals
	d.SetDiscount(DiscountByPercent, 10)
	require.Equal(t, first, d.Totals)

	d.SetDiscount(DiscountByAmount, 30)
	second := d.Totals
	d.SetDiscount(DiscountByAmount, 30)
	require.Equal(t, second, d.Totals)
}

func TestEmptySubtotalResetsDiscount(t *testing.T) {
	d := saleDraftWithLine(t, "3", 100)
	d.SetDiscount(DiscountByPercent, 10)
	d.SetPaid(500)

	require.NoError(t, d.RemoveLine(0))
	require.InDelta(t, 0, d.Totals.Subtotal, 0.0001)
	require.InDelta(t, 0, d.Totals.DiscountPercent, 0.0001)
	require.InDelta(t, 0, d.Totals.DiscountAmount, 0.0001)
	require.InDelta(t, 0, d.Totals.GrandTotal, 0.0001)
	require.InDelta(t, 0, d.Totals.Paid, 0.0001)
	require.InDelta(t, 0, d.Totals.Due, 0.0001)
}

func TestDiscountClamps(t *testing.T) {
	d := saleDraftWithLine(t, "3", 100)

	d.SetDiscount(DiscountByPercent, 150)
	require.InDelta(t, 100, d.Totals.DiscountPercent, 0.0001)
	require.InDelta(t, 300, d.Totals.DiscountAmount, 0.0001)

	d.SetDiscount(DiscountByAmount, 1000)
	require.InDelta(t, 300, d.Totals.DiscountAmount, 0.0001)
	require.InDelta(t, 100, d.Totals.DiscountPercent, 0.0001)

	d.SetDiscount(DiscountByAmount, -5)
	require.InDelta(t, 0, d.Totals.DiscountAmount, 0.0001)
}

func TestExtraChargeNeedsName(t *testing.T) {
	d := saleDraftWithLine(t, "3", 100)

	d.SetExtraCharge("", 50)
	require.InDelta(t, 300, d.Totals.GrandTotal, 0.0001)

	d.SetExtraCharge("Other Cost", 50)
	require.InDelta(t, 350, d.Totals.GrandTotal, 0.0001)

	d.SetExtraCharge("", 50)
	require.InDelta(t, 300, d.Totals.GrandTotal, 0.0001)
}

func TestPriorBalanceOnlyForSales(t *testing.T) {
	sale := New(KindSale)
	require.NoError(t, sale.AddLine(Product{ID: 1, SellPrice: 100, Stock: 10}))
	sale.SetContact(Contact{ID: 7, Name: "Walk-in", Balance: 40})
	require.InDelta(t, 140, sale.Totals.GrandTotal, 0.0001)

	purchase := New(KindPurchase)
	require.NoError(t, purchase.AddLine(Product{ID: 1, CostPrice: 100}))
	purchase.SetContact(Contact{ID: 9, Name: "Supplier", Balance: 40})
	require.InDelta(t, 100, purchase.Totals.GrandTotal, 0.0001)
}

func TestPaidNeverRaised(t *testing.T) {
	d := saleDraftWithLine(t, "3", 100)
	d.SetPaid(100)
	d.SetDiscount(DiscountByPercent, 50)
	// grand total dropped to 150; a paid amount below it stays put
	require.InDelta(t, 100, d.Totals.Paid, 0.0001)
	require.InDelta(t, 50, d.Totals.Due, 0.0001)
}
