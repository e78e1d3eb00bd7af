// Package reports fetches the tabular reports and exports them to Excel.
// Date ranges arrive as opaque from/to strings already computed by the
// caller.
package reports

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/stocklane/stocklane/internal/platform/api"
)

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// SalesSummary fetches the sales summary for a date range.
func (s *Service) SalesSummary(ctx context.Context, from, to string) ([]SummaryRow, error) {
	var rows []SummaryRow
	if err := s.client.Get(ctx, fmt.Sprintf("report/sale/%s/%s", from, to), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PurchaseSummary fetches the purchase summary for a date range.
func (s *Service) PurchaseSummary(ctx context.Context, from, to string) ([]SummaryRow, error) {
	var rows []SummaryRow
	if err := s.client.Get(ctx, fmt.Sprintf("report/purchase/%s/%s", from, to), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Stock fetches the current stock valuation report.
func (s *Service) Stock(ctx context.Context) ([]StockRow, error) {
	var rows []StockRow
	if err := s.client.Get(ctx, "report/stock", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TopProducts fetches the best sellers for a date range.
func (s *Service) TopProducts(ctx context.Context, from, to string) ([]TopProductRow, error) {
	var rows []TopProductRow
	if err := s.client.Get(ctx, fmt.Sprintf("report/topproducts/%s/%s", from, to), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// OutstandingDues fetches contacts with a positive due balance.
func (s *Service) OutstandingDues(ctx context.Context) ([]DueRow, error) {
	var rows []DueRow
	if err := s.client.Get(ctx, "report/dues", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchDashboard loads the landing-screen blocks concurrently. The calls
// are independent; no ordering is guaranteed between them.
func (s *Service) FetchDashboard(ctx context.Context, from, to string) (*Dashboard, error) {
	var dash Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.SalesSummary(ctx, from, to)
		dash.Sales = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.PurchaseSummary(ctx, from, to)
		dash.Purchases = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.TopProducts(ctx, from, to)
		dash.TopProducts = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.OutstandingDues(ctx)
		dash.Dues = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
