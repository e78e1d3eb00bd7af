package returns

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

func TestLoadSaleSeedsDraft(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sale/view/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "Success",
			"data": map[string]any{
				"id":        42,
				"contactID": 7,
				"contact":   "Walk-in",
				"products": []map[string]any{
					{"productLineID": 501, "productID": 11, "name": "Phone", "qty": 2, "price": 300},
				},
			},
		})
	})

	d, err := svc.LoadSale(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, draft.KindSaleReturn, d.Kind)
	require.Equal(t, int64(42), d.OriginID)
	require.Len(t, d.Lines, 1)
	require.Equal(t, int64(501), d.Lines[0].LineRef)
	require.InDelta(t, 600, d.Totals.Subtotal, 0.0001)
}

func TestSubmitSaleReturnPayload(t *testing.T) {
	var payload SaleReturnPayload
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sale/view/42":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "Success",
				"data": map[string]any{
					"id":        42,
					"contactID": 7,
					"contact":   "Walk-in",
					"products": []map[string]any{
						{"productLineID": 501, "productID": 11, "name": "Phone", "qty": 2, "price": 300},
					},
				},
			})
		case "/salereturn/create":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "Success", "message": "Return recorded"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	d, err := svc.LoadSale(context.Background(), 42)
	require.NoError(t, err)
	// return only one of the two units
	require.NoError(t, d.UpdateField(0, draft.FieldQuantity, "1"))

	require.NoError(t, svc.Submit(context.Background(), d))
	require.Equal(t, int64(42), payload.SaleReturn.SaleID)
	require.Equal(t, int64(7), payload.SaleReturn.ContactID)
	require.InDelta(t, 300, payload.SaleReturn.Total, 0.0001)
	require.Len(t, payload.Products, 1)
	require.Equal(t, int64(501), payload.Products[0].ProductLineID)
	require.InDelta(t, 1, payload.Products[0].Qty, 0.0001)
	require.InDelta(t, 300, payload.Products[0].Amount, 0.0001)
	require.Equal(t, draft.StateEmpty, d.State())
}
