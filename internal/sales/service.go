// Package sales implements the POS sale entry and sale listing screens.
package sales

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stocklane/stocklane/internal/draft"
	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/platform/api"
)

const fallbackCreate = "Failed to create sale"

// Row is one entry of the sale list screen.
type Row struct {
	ID         int64   `json:"saleID"`
	Customer   string  `json:"customer"`
	Total      float64 `json:"total"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grandTotal"`
	Paid       float64 `json:"paid"`
	DueAmount  float64 `json:"dueAmount"`
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

// NewDraft starts an empty POS sale draft. Selecting a customer later
// folds their outstanding balance into the grand total.
func (s *Service) NewDraft() *draft.Draft {
	return draft.New(draft.KindSale)
}

// Submit posts the draft in exactly one call. On success the draft is
// reset; on any failure it is retained untouched for retry.
func (s *Service) Submit(ctx context.Context, d *draft.Draft) error {
	if err := d.BeginSubmit(); err != nil {
		s.notifier.Error(err.Error())
		return err
	}
	msg, err := s.client.Post(ctx, "sale/create", buildPayload(d), nil)
	if err != nil {
		d.FailSubmit()
		s.metrics.ObserveSubmit("sale", api.Outcome(err))
		s.notifier.Error(api.UserMessage(err, fallbackCreate))
		return err
	}
	draftID := d.ID
	d.Reset()
	s.metrics.ObserveSubmit("sale", observability.OutcomeSuccess)
	if msg == "" {
		msg = "Sale completed"
	}
	s.notifier.Success(msg)
	if s.logger != nil {
		s.logger.Info("sale submitted", slog.String("draft", draftID))
	}
	return nil
}

// List fetches one page of past sales.
func (s *Service) List(ctx context.Context, page, perPage int, term string) ([]Row, api.Pagination, error) {
	var rows []Row
	total, err := s.client.List(ctx, "sale", page, perPage, term, &rows)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return rows, api.NewPagination(page, perPage, total), nil
}

// Delete removes a sale by id.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("sale/delete/%d", id))
}
