package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineTotalFollowsMutations(t *testing.T) {
	d := New(KindPurchase)
	require.NoError(t, d.AddLine(Product{ID: 1, Name: "Router", CostPrice: 80}))
	require.InDelta(t, 80, d.Lines[0].LineTotal, 0.0001)

	require.NoError(t, d.UpdateField(0, FieldQuantity, "4"))
	require.InDelta(t, 320, d.Lines[0].LineTotal, 0.0001)

	require.NoError(t, d.UpdateField(0, FieldPrice, "75.50"))
	require.InDelta(t, 302, d.Lines[0].LineTotal, 0.0001)

	// empty input coerces to zero
	require.NoError(t, d.UpdateField(0, FieldQuantity, ""))
	require.InDelta(t, 0, d.Lines[0].Quantity, 0.0001)
	require.InDelta(t, 0, d.Lines[0].LineTotal, 0.0001)
}

func TestAddLineMergesByProduct(t *testing.T) {
	d := New(KindSale)
	p := Product{ID: 5, Name: "Mouse", SellPrice: 25, Stock: 10}
	require.NoError(t, d.AddLine(p))
	require.NoError(t, d.AddLine(p))
	require.Len(t, d.Lines, 1)
	require.InDelta(t, 2, d.Lines[0].Quantity, 0.0001)
	require.InDelta(t, 50, d.Lines[0].LineTotal, 0.0001)
}

func TestAddLineStockGuard(t *testing.T) {
	d := New(KindSale)
	require.ErrorIs(t, d.AddLine(Product{ID: 5, Name: "Mouse", SellPrice: 25, Stock: 0}), ErrOutOfStock)
	require.Empty(t, d.Lines)

	p := Product{ID: 6, Name: "Cable", SellPrice: 5, Stock: 2}
	require.NoError(t, d.AddLine(p))
	require.NoError(t, d.AddLine(p))
	require.ErrorIs(t, d.AddLine(p), ErrStockExceeded)
	require.InDelta(t, 2, d.Lines[0].Quantity, 0.0001)
}

func TestQuantityGuardOnUpdate(t *testing.T) {
	d := New(KindSale)
	require.NoError(t, d.AddLine(Product{ID: 6, Name: "Cable", SellPrice: 5, Stock: 3}))
	require.ErrorIs(t, d.UpdateField(0, FieldQuantity, "4"), ErrStockExceeded)
	require.InDelta(t, 1, d.Lines[0].Quantity, 0.0001)

	// purchases are not stock-guarded
	p := New(KindPurchase)
	require.NoError(t, p.AddLine(Product{ID: 6, Name: "Cable", CostPrice: 3, Stock: 0}))
	require.NoError(t, p.UpdateField(0, FieldQuantity, "500"))
}

func TestRemoveLineKeepsOrder(t *testing.T) {
	d := New(KindPurchase)
	require.NoError(t, d.AddLine(Product{ID: 1, Name: "A", CostPrice: 1}))
	require.NoError(t, d.AddLine(Product{ID: 2, Name: "B", CostPrice: 2}))
	require.NoError(t, d.AddLine(Product{ID: 3, Name: "C", CostPrice: 3}))

	require.NoError(t, d.RemoveLine(1))
	require.Len(t, d.Lines, 2)
	require.Equal(t, "A", d.Lines[0].Name)
	require.Equal(t, "C", d.Lines[1].Name)

	require.ErrorIs(t, d.RemoveLine(5), ErrLineIndex)
}

func TestSetSerialNumbers(t *testing.T) {
	d := New(KindPurchase)
	require.NoError(t, d.AddLine(Product{ID: 1, Name: "Phone", CostPrice: 300}))
	require.NoError(t, d.AddLine(Product{ID: 2, Name: "Tablet", CostPrice: 500}))

	require.NoError(t, d.SetSerialNumbers(0, []string{"A1", "A2", "A3"}))
	require.InDelta(t, 3, d.Lines[0].Quantity, 0.0001)
	require.InDelta(t, 900, d.Lines[0].LineTotal, 0.0001)

	// internal duplicate rejected, prior serials untouched
	err := d.SetSerialNumbers(0, []string{"B1", "B1"})
	var dup *DuplicateSerialError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "B1", dup.Serial)
	require.Equal(t, []string{"A1", "A2", "A3"}, d.Lines[0].Serials)

	// collision with another line rejected
	err = d.SetSerialNumbers(1, []string{"A2"})
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "A2", dup.Serial)
	require.Empty(t, d.Lines[1].Serials)
}

func TestUnknownFieldRejected(t *testing.T) {
	d := New(KindPurchase)
	require.NoError(t, d.AddLine(Product{ID: 1, Name: "Phone", CostPrice: 300}))
	require.ErrorIs(t, d.UpdateField(0, "color", "5"), ErrUnknownField)
}
