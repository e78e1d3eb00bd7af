// Package returns implements the sale-return and purchase-return screens.
// A return draft is seeded from the original transaction's rows and edited
// down to the quantities actually coming back.
package returns

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
	fallbackSale     = "Failed to create sale return"
	fallbackPurchase = "Failed to create purchase return"
)

type Service struct {
	client   *api.Client
	notifier notify.Notifier
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewService(client *api.Client, notifier notify.Notifier, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{client: client, notifier: notifier, metrics: metrics, logger: logger}
}

// LoadSale seeds a sale-return draft from a posted sale.
func (s *Service) LoadSale(ctx context.Context, saleID int64) (*draft.Draft, error) {
	return s.load(ctx, fmt.Sprintf("sale/view/%d", saleID), draft.KindSaleReturn)
}

// LoadPurchase seeds a purchase-return draft from a posted purchase.
func (s *Service) LoadPurchase(ctx context.Context, purchaseID int64) (*draft.Draft, error) {
	return s.load(ctx, fmt.Sprintf("purchase/view/%d", purchaseID), draft.KindPurchaseReturn)
}

func (s *Service) load(ctx context.Context, path string, kind draft.Kind) (*draft.Draft, error) {
	var origin Origin
	if err := s.client.Get(ctx, path, &origin); err != nil {
		return nil, err
	}
	d := draft.New(kind)
	d.OriginID = origin.ID
	d.SetContact(draft.Contact{ID: origin.ContactID, Name: origin.Contact})
	for _, l := range origin.Lines {
		d.AddLineFrom(draft.Line{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Qty,
			UnitPrice: l.Price,
			Serials:   l.SerialNos,
			LineRef:   l.LineID,
		})
	}
	return d, nil
}

// Submit posts the return draft in exactly one call, choosing the
// endpoint and payload key from the draft kind.
func (s *Service) Submit(ctx context.Context, d *draft.Draft) error {
	if err := d.BeginSubmit(); err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	var (
		path     string
		body     any
		label    string
		fallback string
	)
	switch d.Kind {
	case draft.KindPurchaseReturn:
		path, label, fallback = "purchasereturn/create", "purchase_return", fallbackPurchase
		body = PurchaseReturnPayload{
			PurchaseReturn: PurchaseReturnHeader{
				ContactID:  d.Contact.ID,
				PurchaseID: d.OriginID,
				Total:      d.Totals.Subtotal,
				Note:       d.Note,
			},
			Products: returnProducts(d),
		}
	default:
		path, label, fallback = "salereturn/create", "sale_return", fallbackSale
		body = SaleReturnPayload{
			SaleReturn: SaleReturnHeader{
				ContactID: d.Contact.ID,
				SaleID:    d.OriginID,
				Total:     d.Totals.Subtotal,
				Note:      d.Note,
			},
			Products: returnProducts(d),
		}
	}

	msg, err := s.client.Post(ctx, path, body, nil)
	if err != nil {
		d.FailSubmit()
		s.metrics.ObserveSubmit(label, api.Outcome(err))
		s.notifier.Error(api.UserMessage(err, fallback))
		return err
	}
	d.Reset()
	s.metrics.ObserveSubmit(label, observability.OutcomeSuccess)
	if msg == "" {
		msg = "Return recorded"
	}
	s.notifier.Success(msg)
	return nil
}

// ListSaleReturns fetches one page of past sale returns.
func (s *Service) ListSaleReturns(ctx context.Context, page, perPage int, term string) ([]Row, api.Pagination, error) {
	return s.list(ctx, "salereturn", page, perPage, term)
}

// ListPurchaseReturns fetches one page of past purchase returns.
func (s *Service) ListPurchaseReturns(ctx context.Context, page, perPage int, term string) ([]Row, api.Pagination, error) {
	return s.list(ctx, "purchasereturn", page, perPage, term)
}

// Row is one entry of a return list screen.
type Row struct {
	ID      int64   `json:"returnID"`
	Contact string  `json:"contact"`
	Total   float64 `json:"total"`
	Date    string  `json:"date"`
}

func (s *Service) list(ctx context.Context, resource string, page, perPage int, term string) ([]Row, api.Pagination, error) {
	var rows []Row
	total, err := s.client.List(ctx, resource, page, perPage, term, &rows)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return rows, api.NewPagination(page, perPage, total), nil
}

func returnProducts(d *draft.Draft) []ReturnProduct {
	products := make([]ReturnProduct, 0, len(d.Lines))
	for i := range d.Lines {
		l := &d.Lines[i]
		products = append(products, ReturnProduct{
			ProductID:     l.ProductID,
			ProductLineID: l.LineRef,
			Qty:           l.Quantity,
			Amount:        l.UnitPrice,
			Total:         l.LineTotal,
			SerialNos:     l.Serials,
		})
	}
	return products
}
