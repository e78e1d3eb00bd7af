package purchases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stocklane/stocklane/internal/draft"
	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/platform/api"
	"github.com/stocklane/stocklane/internal/session"
)

type silentNotifier struct{}

func (silentNotifier) Success(string) {}
func (silentNotifier) Error(string)   {}

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sessions := session.NewStore("")
	require.NoError(t, sessions.Set("tok"))
	client := api.NewClient(api.Config{BaseURL: srv.URL, TokenHeader: "POS-Token"}, sessions, nil, observability.NewMetrics(), &notify.Busy{})
	return NewService(client, silentNotifier{}, observability.NewMetrics(), nil)
}

func TestSubmitSerializesLines(t *testing.T) {
	var payload Payload
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/purchase/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "Success"})
	})

	d := svc.NewDraft()
	require.NoError(t, d.AddLine(draft.Product{ID: 11, Name: "Phone", CostPrice: 300, DealerPrice: 340, MRP: 380, Warranty: 12}))
	require.NoError(t, d.SetSerialNumbers(0, []string{"S1", "S2"}))
	d.SetContact(draft.Contact{ID: 9, Name: "Supplier"})
	d.SetDiscount(draft.DiscountByPercent, 5)
	d.SetPaid(400)

	require.NoError(t, svc.Submit(context.Background(), d))

	require.Equal(t, int64(9), payload.Purchase.ContactID)
	require.InDelta(t, 600, payload.Purchase.Total, 0.0001)
	require.InDelta(t, 30, payload.Purchase.Discount, 0.0001)
	require.InDelta(t, 570, payload.Purchase.GrandTotal, 0.0001)
	require.InDelta(t, 400, payload.Purchase.Paid, 0.0001)
	require.InDelta(t, 170, payload.Purchase.DueAmount, 0.0001)
	require.Len(t, payload.Products, 1)
	require.InDelta(t, 2, payload.Products[0].Qty, 0.0001)
	require.InDelta(t, 300, payload.Products[0].UnitCost, 0.0001)
	require.InDelta(t, 340, payload.Products[0].DP, 0.0001)
	require.InDelta(t, 12, payload.Products[0].Warranty, 0.0001)
	require.Equal(t, []string{"S1", "S2"}, payload.Products[0].SerialNos)
}

func TestSubmitRejectsZeroCost(t *testing.T) {
	called := false
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "Success"})
	})

	d := svc.NewDraft()
	require.NoError(t, d.AddLine(draft.Product{ID: 11, Name: "Phone", CostPrice: 0}))
	d.SetContact(draft.Contact{ID: 9, Name: "Supplier"})
	require.ErrorIs(t, svc.Submit(context.Background(), d), draft.ErrZeroCost)
	require.False(t, called)
	require.Equal(t, draft.StateEditing, d.State())
}
