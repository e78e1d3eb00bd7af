// Package purchases implements the purchase entry and listing screens.
package purchases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stocklane/stocklane/internal/draft"
	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/platform/api"
)

const fallbackCreate = "Failed to create purchase"

// Row is one entry of the purchase list screen.
type Row struct {
	ID         int64   `json:"purchaseID"`
	Supplier   string  `json:"supplier"`
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

// NewDraft starts an empty purchase draft.
func (s *Service) NewDraft() *draft.Draft {
	return draft.New(draft.KindPurchase)
}

// Submit posts the draft in exactly one call. On success the draft is
// reset; on any failure it is retained untouched for retry.
func (s *Service) Submit(ctx context.Context, d *draft.Draft) error {
	if err := d.BeginSubmit(); err != nil {
		s.notifier.Error(err.Error())
		return err
	}
	msg, err := s.client.Post(ctx, "purchase/create", buildPayload(d), nil)
	if err != nil {
		d.FailSubmit()
		s.metrics.ObserveSubmit("purchase", api.Outcome(err))
		s.notifier.Error(api.UserMessage(err, fallbackCreate))
		return err
	}
	draftID := d.ID
	d.Reset()
	s.metrics.ObserveSubmit("purchase", observability.OutcomeSuccess)
	if msg == "" {
		msg = "Purchase created"
	}
	s.notifier.Success(msg)
	if s.logger != nil {
		s.logger.Info("purchase submitted", slog.String("draft", draftID))
	}
	return nil
}

// List fetches one page of past purchases.
func (s *Service) List(ctx context.Context, page, perPage int, term string) ([]Row, api.Pagination, error) {
	var rows []Row
	total, err := s.client.List(ctx, "purchase", page, perPage, term, &rows)
	if err != nil {
		return nil, api.Pagination{}, err
	}
	return rows, api.NewPagination(page, perPage, total), nil
}

// Delete removes a purchase by id.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	return s.client.Delete(ctx, fmt.Sprintf("purchase/delete/%d", id))
}
