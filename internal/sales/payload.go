package sales

import (
	"github.com/stocklane/stocklane/internal/draft"
)

const dateLayout = "2006-01-02"

// Payload is the exact body shape the sale create endpoint expects.
// The "outher" spelling is the backend's own field name.
type Payload struct {
	Sale     Header    `json:"Sale"`
	Products []Product `json:"SaleProduct"`
}

type Header struct {
	ContactID       int64   `json:"contactID"`
	Total           float64 `json:"total"`
	Discount        float64 `json:"discount"`
	GrandTotal      float64 `json:"grandTotal"`
	PreviousBalance float64 `json:"PreviousBalance"`
	Paid            float64 `json:"paid"`
	DueAmount       float64 `json:"dueAmount"`
	Note            string  `json:"note"`
	Date            string  `json:"date"`
	Outher          string  `json:"outher,omitempty"`
	OutherAmount    float64 `json:"outherAmount,omitempty"`
}

type Product struct {
	ProductID int64   `json:"productID"`
	QtySold   float64 `json:"qtySold"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

// buildPayload serializes a validated sale draft.
func buildPayload(d *draft.Draft) Payload {
	products := make([]Product, 0, len(d.Lines))
	for i := range d.Lines {
		l := &d.Lines[i]
		products = append(products, Product{
			ProductID: l.ProductID,
			QtySold:   l.Quantity,
			Price:     l.UnitPrice,
			Total:     l.LineTotal,
		})
	}
	header := Header{
		ContactID:       d.Contact.ID,
		Total:           d.Totals.Subtotal,
		Discount:        d.Totals.DiscountAmount,
		GrandTotal:      d.Totals.GrandTotal,
		PreviousBalance: d.Totals.PriorBalance,
		Paid:            d.Totals.Paid,
		DueAmount:       d.Totals.Due,
		Note:            d.Note,
		Date:            d.Date.Format(dateLayout),
	}
	if d.Totals.ExtraChargeName != "" {
		header.Outher = d.Totals.ExtraChargeName
		header.OutherAmount = d.Totals.ExtraChargeAmount
	}
	return Payload{Sale: header, Products: products}
}
