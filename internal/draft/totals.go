package draft

import "github.com/stocklane/stocklane/internal/money"

// DiscountField names the side of the percent/amount pair a user edited.
type DiscountField string

const (
	DiscountByPercent DiscountField = "percent"
	DiscountByAmount  DiscountField = "amount"
)

// Totals holds every derived monetary field of a draft. Only the
// last-edited discount side is authoritative; the other is re-derived on
// every recomputation, which breaks the circular dependency between the
// two fields.
type Totals struct {
	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64

	ExtraChargeName   string
	ExtraChargeAmount float64

	PriorBalance float64

	GrandTotal float64
	Paid       float64
	Due        float64

	lastDiscountEdit DiscountField
}

// SetDiscount records a discount edit on one side of the pair. Negative
// input clamps to 0 at the boundary.
func (d *Draft) SetDiscount(by DiscountField, value float64) {
	if value < 0 {
		value = 0
	}
	switch by {
	case DiscountByAmount:
		d.Totals.DiscountAmount = value
	default:
		by = DiscountByPercent
		d.Totals.DiscountPercent = value
	}
	d.Totals.lastDiscountEdit = by
	d.touch()
	d.recompute()
}

// SetPaid records the paid amount. Negative input clamps to 0; amounts
// above the grand total clamp down during recomputation.
func (d *Draft) SetPaid(value float64) {
	if value < 0 {
		value = 0
	}
	d.Totals.Paid = value
	d.touch()
	d.recompute()
}

// SetExtraCharge records the optional named additional cost. The amount
// only counts while the name is non-empty.
func (d *Draft) SetExtraCharge(name string, amount float64) {
	if amount < 0 {
		amount = 0
	}
	d.Totals.ExtraChargeName = name
	d.Totals.ExtraChargeAmount = amount
	d.touch()
	d.recompute()
}

// SetPriorBalance records the selected contact's existing dues. It only
// affects the grand total for kinds that compound prior balance.
func (d *Draft) SetPriorBalance(balance float64) {
	d.Totals.PriorBalance = balance
	d.touch()
	d.recompute()
}

// recompute re-derives every downstream field in fixed order: subtotal,
// discount reconciliation, grand total, paid clamp, due.
func (d *Draft) recompute() {
	t := &d.Totals
	t.Subtotal = d.Subtotal()

	switch {
	case t.Subtotal <= 0:
		// No base to discount against; reset both sides rather than
		// dividing by zero.
		t.DiscountPercent = 0
		t.DiscountAmount = 0
	case t.lastDiscountEdit == DiscountByAmount:
		if t.DiscountAmount > t.Subtotal {
			t.DiscountAmount = t.Subtotal
		}
		t.DiscountPercent = money.Round2(t.DiscountAmount / t.Subtotal * 100)
	default:
		if t.DiscountPercent > 100 {
			t.DiscountPercent = 100
		}
		t.DiscountAmount = money.Round2(t.Subtotal * t.DiscountPercent / 100)
	}

	extra := 0.0
	if t.ExtraChargeName != "" {
		extra = t.ExtraChargeAmount
	}
	prior := 0.0
	if d.Kind.UsesPriorBalance() {
		prior = t.PriorBalance
	}

	t.GrandTotal = t.Subtotal + extra - t.DiscountAmount + prior

	if t.Paid > t.GrandTotal {
		t.Paid = t.GrandTotal
	}
	if t.Paid < 0 {
		t.Paid = 0
	}

	t.Due = t.GrandTotal - t.Paid
	if t.Due < 0 {
		t.Due = 0
	}
}
