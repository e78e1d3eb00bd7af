package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/platform/api"
	"github.com/stocklane/stocklane/internal/session"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sessions := session.NewStore("")
	require.NoError(t, sessions.Set("tok"))
	client := api.NewClient(api.Config{BaseURL: srv.URL, TokenHeader: "POS-Token"}, sessions, nil, observability.NewMetrics(), &notify.Busy{})
	return NewService(client)
}

func TestSearchProducts(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product/1/10/key", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "Success",
			"data": []map[string]any{
				{"productID": 3, "name": "Keyboard", "sellPrice": 4500, "stock": 7},
			},
			"total": 1,
		})
	})

	products, err := svc.SearchProducts(context.Background(), "key")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Keyboard", products[0].Name)

	snap := products[0].Snapshot()
	require.Equal(t, int64(3), snap.ID)
	require.InDelta(t, 4500, snap.SellPrice, 0.0001)
	require.InDelta(t, 7, snap.Stock, 0.0001)
}

func TestConcurrentIdenticalSearchesCollapse(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		<-release
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "Success",
			"data":   []map[string]any{{"productID": 1, "name": "Mouse"}},
			"total":  1,
		})
	})

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			_, err := svc.SearchProducts(context.Background(), "mou")
			return err
		})
	}
	// let the goroutines pile up on the same key before releasing
	for calls.Load() == 0 {
		runtime.Gosched()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	require.NoError(t, g.Wait())
	require.Equal(t, int32(1), calls.Load())
}

func TestCreateProductValidates(t *testing.T) {
	called := false
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "Success"})
	})

	_, err := svc.CreateProduct(context.Background(), SaveProductRequest{Name: ""})
	require.Error(t, err)
	require.False(t, called)

	_, err = svc.CreateProduct(context.Background(), SaveProductRequest{Name: "Mouse", CategoryID: 2, SellPrice: 1200})
	require.NoError(t, err)
	require.True(t, called)
}
