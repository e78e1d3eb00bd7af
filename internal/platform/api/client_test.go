package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *notify.Busy) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewStore("")
	require.NoError(t, sessions.Set("tok-123"))

	busy := &notify.Busy{}
	client := NewClient(Config{BaseURL: srv.URL, TokenHeader: "POS-Token"}, sessions, nil, observability.NewMetrics(), busy)
	return client, busy
}

func TestListBuildsPathAndCarriesToken(t *testing.T) {
	var gotPath, gotToken string
	client, busy := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("POS-Token")
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "Success",
			"data":   []map[string]any{{"name": "Mouse"}},
			"total":  41,
		})
	})

	var out []struct {
		Name string `json:"name"`
	}
	total, err := client.List(context.Background(), "product", 2, 20, "", &out)
	require.NoError(t, err)
	require.Equal(t, "/product/2/20/0", gotPath)
	require.Equal(t, "tok-123", gotToken)
	require.Equal(t, 41, total)
	require.Len(t, out, 1)
	require.Equal(t, "Mouse", out[0].Name)
	require.False(t, busy.Active())
}

func TestNonSuccessStatusIsRemoteError(t *testing.T) {
	client, busy := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "Fail",
			"message": "Contact already exists",
		})
	})

	_, err := client.Post(context.Background(), "contact/create", map[string]string{"name": "x"}, nil)
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, "Contact already exists", remote.Message)
	require.Equal(t, "Contact already exists", UserMessage(err, "Failed to create contact"))
	require.False(t, busy.Active())
}

func TestEmptyMessageFallsBack(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "Error"})
	})

	_, err := client.Post(context.Background(), "contact/create", nil, nil)
	require.Error(t, err)
	require.Equal(t, "Failed to create contact", UserMessage(err, "Failed to create contact"))
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	busy := &notify.Busy{}
	// a closed port: the request never completes
	broken := NewClient(Config{BaseURL: "http://127.0.0.1:1", TokenHeader: "POS-Token"}, nil, nil, observability.NewMetrics(), busy)

	_, err := broken.Post(context.Background(), "sale/create", map[string]int{"x": 1}, nil)
	var network *NetworkError
	require.ErrorAs(t, err, &network)
	require.Equal(t, "Failed to create sale", UserMessage(err, "Failed to create sale"))
	require.False(t, busy.Active())
}

func TestDeleteReturnsMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/product/delete/9", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "Success", "message": "Product deleted"})
	})

	msg, err := client.Delete(context.Background(), "product/delete/9")
	require.NoError(t, err)
	require.Equal(t, "Product deleted", msg)
}
