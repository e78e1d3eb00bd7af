package purchases

import (
	"github.com/stocklane/stocklane/internal/draft"
)

const dateLayout = "2006-01-02"

// Payload is the exact body shape the purchase create endpoint expects.
type Payload struct {
	Purchase Header    `json:"Purchase"`
	Products []Product `json:"PurchasesProduct"`
}

type Header struct {
	ContactID  int64   `json:"contactID"`
	Total      float64 `json:"total"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grandTotal"`
	Paid       float64 `json:"paid"`
	DueAmount  float64 `json:"dueAmount"`
	Note       string  `json:"note"`
	Date       string  `json:"date"`
}

type Product struct {
	ProductID int64    `json:"productID"`
	Qty       float64  `json:"qty"`
	UnitCost  float64  `json:"unitCost"`
	DP        float64  `json:"dp"`
	MRP       float64  `json:"mrp"`
	Warranty  float64  `json:"warranty"`
	Total     float64  `json:"total"`
	SerialNos []string `json:"serialNos"`
}

// buildPayload serializes a validated purchase draft.
func buildPayload(d *draft.Draft) Payload {
	products := make([]Product, 0, len(d.Lines))
	for i := range d.Lines {
		l := &d.Lines[i]
		products = append(products, Product{
			ProductID: l.ProductID,
			Qty:       l.Quantity,
			UnitCost:  l.UnitPrice,
			DP:        l.DealerPrice,
			MRP:       l.MRP,
			Warranty:  l.Warranty,
			Total:     l.LineTotal,
			SerialNos: l.Serials,
		})
	}
	return Payload{
		Purchase: Header{
			ContactID:  d.Contact.ID,
			Total:      d.Totals.Subtotal,
			Discount:   d.Totals.DiscountAmount,
			GrandTotal: d.Totals.GrandTotal,
			Paid:       d.Totals.Paid,
			DueAmount:  d.Totals.Due,
			Note:       d.Note,
			Date:       d.Date.Format(dateLayout),
		},
		Products: products,
	}
}
