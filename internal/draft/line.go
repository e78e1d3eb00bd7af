package draft

import (
	"strings"

	"github.com/stocklane/stocklane/internal/money"
)

// Product is the snapshot of a catalog product taken at selection time.
// The draft keeps these copies for display and never refreshes them from
// the server mid-edit.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Brand       string
	Unit        string
	SellPrice   float64
	CostPrice   float64
	DealerPrice float64
	MRP         float64
	Stock       float64
	Warranty    float64
}

// Line is one product row of a draft. LineTotal is always
// Quantity*UnitPrice and is recomputed on every mutation, never set.
type Line struct {
	ProductID   int64
	Name        string
	Category    string
	Brand       string
	Unit        string
	Quantity    float64
	UnitPrice   float64
	DealerPrice float64
	MRP         float64
	Warranty    float64
	Stock       float64
	LineTotal   float64
	Serials     []string

	// LineRef points at the originating transaction row for return
	// drafts; zero elsewhere.
	LineRef int64
}

func (l *Line) recompute() {
	l.LineTotal = l.Quantity * l.UnitPrice
}

// AddLine selects a product into the draft. A product already present is
// merged by incrementing its quantity; otherwise a new line is appended
// with quantity 1 and the price defaulted for the draft kind. Sale-kind
// drafts reject selections that would exceed available stock, without
// mutating anything.
func (d *Draft) AddLine(p Product) error {
	if d.Kind.GuardsStock() && p.Stock <= 0 {
		return ErrOutOfStock
	}
	for i := range d.Lines {
		if d.Lines[i].ProductID == p.ID {
			if d.Kind.GuardsStock() && d.Lines[i].Quantity+1 > p.Stock {
				return ErrStockExceeded
			}
			d.Lines[i].Quantity++
			d.Lines[i].recompute()
			d.touch()
			d.recompute()
			return nil
		}
	}
	price := p.SellPrice
	if d.Kind.UsesCost() {
		price = p.CostPrice
	}
	d.Lines = append(d.Lines, Line{
		ProductID:   p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Unit:        p.Unit,
		Quantity:    1,
		UnitPrice:   price,
		DealerPrice: p.DealerPrice,
		MRP:         p.MRP,
		Warranty:    p.Warranty,
		Stock:       p.Stock,
	})
	d.Lines[len(d.Lines)-1].recompute()
	d.touch()
	d.recompute()
	return nil
}

// AddLineFrom seeds a line copied from an already-posted transaction,
// used by return drafts where rows reference their original line.
func (d *Draft) AddLineFrom(l Line) {
	l.recompute()
	d.Lines = append(d.Lines, l)
	d.touch()
	d.recompute()
}

// Line field names accepted by UpdateField.
const (
	FieldQuantity = "quantity"
	FieldPrice    = "price"
	FieldDP       = "dp"
	FieldMRP      = "mrp"
	FieldWarranty = "warranty"
)

// UpdateField applies raw numeric input to one field of a line. Empty
// input coerces to 0 and negatives clamp to 0 at this boundary; the line
// total is recomputed afterwards.
func (d *Draft) UpdateField(index int, field, value string) error {
	if index < 0 || index >= len(d.Lines) {
		return ErrLineIndex
	}
	v := money.ParseAmount(value)
	line := &d.Lines[index]
	switch field {
	case FieldQuantity:
		if d.Kind.GuardsStock() && v > line.Stock {
			return ErrStockExceeded
		}
		line.Quantity = v
	case FieldPrice:
		line.UnitPrice = v
	case FieldDP:
		line.DealerPrice = v
	case FieldMRP:
		line.MRP = v
	case FieldWarranty:
		line.Warranty = v
	default:
		return ErrUnknownField
	}
	line.recompute()
	d.touch()
	d.recompute()
	return nil
}

// RemoveLine drops a line by display position.
func (d *Draft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return ErrLineIndex
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	d.touch()
	d.recompute()
	return nil
}

// SetSerialNumbers assigns serial numbers to a line. The set must be
// duplicate-free and must not collide with serials on other lines; on
// success the quantity is forced to the serial count. On failure the
// line's prior serials stay untouched.
func (d *Draft) SetSerialNumbers(index int, serials []string) error {
	if index < 0 || index >= len(d.Lines) {
		return ErrLineIndex
	}
	seen := make(map[string]struct{}, len(serials))
	cleaned := make([]string, 0, len(serials))
	for _, s := range serials {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			return &DuplicateSerialError{Serial: s}
		}
		seen[s] = struct{}{}
		cleaned = append(cleaned, s)
	}
	for i := range d.Lines {
		if i == index {
			continue
		}
		for _, other := range d.Lines[i].Serials {
			if _, dup := seen[other]; dup {
				return &DuplicateSerialError{Serial: other}
			}
		}
	}
	line := &d.Lines[index]
	line.Serials = cleaned
	line.Quantity = float64(len(cleaned))
	line.recompute()
	d.touch()
	d.recompute()
	return nil
}

// Subtotal sums line totals in entry order.
func (d *Draft) Subtotal() float64 {
	var sum float64
	for i := range d.Lines {
		sum += d.Lines[i].LineTotal
	}
	return sum
}
