// Package quotations implements the quotation entry and listing screens.
// A quotation reuses the sale form without payment fields.
package quotations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stocklane/stocklane/internal/draft"
	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/platform/api"
)

const (
	dateLayout     = "2006-01-02"
	fallbackCreate = "Failed to create quotation"
)

// Payload is the body shape of the quotation create endpoint.
type Payload struct {
	Quotation Header    `json:"Quotation"`
	Products  []Product `json:"QuotationProduct"`
}

type Header struct {
	ContactID  int64   `json:"contactID"`
	Total      float64 `json:"total"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grandTotal"`
	Note       string  `json:"note"`
	Date       string  `json:"date"`
}

type Product struct {
	ProductID int64   `json:"productID"`
	Qty       float64 `json:"qty"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

// Row is one entry of the quotation list screen.
type Row struct {
	ID         int64   `json:"quotationID"`
	Customer   string  `json:"customer"`
	Total      float64 `json:"total"`
	GrandTotal float64 `json:"grandTotal"`
	Date       string  `json:"date"`
}

type Service struct {
	client   *api.Client
	notifier notify.Notifier
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewService(client *api.Client, notifier notify.Notifier, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{client: client, notifier: notifier, metrics: metrics, logger: logger}
}

// NewDraft starts an empty quotation draft.
func (s *Service) NewDraft() *draft.Draft {
	return draft.New(draft.KindQuotation)
}

// Submit posts the draft in exactly one call. On success the draft is
// reset; on any failure it is retained untouched for retry.
func (s *Service) Submit(ctx context.Context, d *draft.Draft) error {
	if err := d.BeginSubmit(); err != nil {
		s.notifier.Error(err.Error())
		return err
	}
	msg, err := s.client.Post(ctx, "quotation/create", buildPayload(d), nil)
	if err != nil {
		d.FailSubmit()
		s.metrics.ObserveSubmit("quotation", api.Outcome(err))
		s.notifier.Error(api.UserMessage(err, fallbackCreate))
		return err
	}
	d.Reset()
	s.metrics.ObserveSubmit("quotation", observability.OutcomeSuccess)
	if msg == "" {
		msg = "Quotation created"
	}
	s.notifier.Success(msg)
	return nil
}

// List fetches one page of quotations.
func (s *Service) List(ctx context.Context, page, perPage int, term string) ([]Row, api.Pagination, error) {
	var rows []Row
	total, err := s.client.List(ctx, "quotation", page, perPage, term, &rows)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return rows, api.NewPagination(page, perPage, total), nil
}

// Delete removes a quotation by id.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("quotation/delete/%d", id))
}

func buildPayload(d *draft.Draft) Payload {
	products := make([]Product, 0, len(d.Lines))
	for i := range d.Lines {
		l := &d.Lines[i]
		products = append(products, Product{
			ProductID: l.ProductID,
			Qty:       l.Quantity,
			Price:     l.UnitPrice,
			Total:     l.LineTotal,
		})
	}
	return Payload{
		Quotation: Header{
			ContactID:  d.Contact.ID,
			Total:      d.Totals.Subtotal,
			Discount:   d.Totals.DiscountAmount,
			GrandTotal: d.Totals.GrandTotal,
			Note:       d.Note,
			Date:       d.Date.Format(dateLayout),
		},
		Products: products,
	}
}
