package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/session"
)

// StatusSuccess is the only status value the backend uses to signal success.
const StatusSuccess = "Success"

// Envelope is the common response shape of every backend endpoint.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
}

// Config carries the connection settings for the backend.
type Config struct {
	BaseURL     string
	TokenHeader string
	Timeout     time.Duration
}

// Client talks to the remote POS backend. Every authenticated call reads
// the session token and carries a fresh request ID. Calls are never
// retried or cancelled beyond their context; a superseded response simply
// arrives later (last response wins).
type Client struct {
	baseURL     string
	tokenHeader string
	httpc       *http.Client
	sessions    *session.Store
	logger      *slog.Logger
	metrics     *observability.Metrics
	busy        *notify.Busy
}

// NewClient constructs a Client.
func NewClient(cfg Config, sessions *session.Store, logger *slog.Logger, metrics *observability.Metrics, busy *notify.Busy) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		tokenHeader: cfg.TokenHeader,
		httpc:       &http.Client{Timeout: timeout},
		sessions:    sessions,
		logger:      logger,
		metrics:     metrics,
		busy:        busy,
	}
}

// List fetches one page of a listing endpoint. The backend encodes paging
// in path segments, with "0" standing in for an empty search term.
func (c *Client) List(ctx context.Context, resource string, page, pageSize int, search string, out any) (int, error) {
	term := strings.TrimSpace(search)
	if term == "" {
		term = "0"
	}
	path := fmt.Sprintf("%s/%d/%d/%s", resource, page, pageSize, term)
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return 0, &NetworkError{Op: "decode " + resource, Err: err}
		}
	}
	return env.Total, nil
}

// Get fetches a single resource by path, e.g. "product/view/42".
func (c *Client) Get(ctx context.Context, path string, out any) error {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &NetworkError{Op: "decode " + path, Err: err}
		}
	}
	return nil
}

// Post submits a create/update body and returns the server message.
func (c *Client) Post(ctx context.Context, path string, body, out any) (string, error) {
	env, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", &NetworkError{Op: "decode " + path, Err: err}
		}
	}
	return env.Message, nil
}

// Delete removes a resource by id. The backend exposes deletion as a GET,
// idempotent by convention.
func (c *Client) Delete(ctx context.Context, path string) (string, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	c.busy.Begin()
	defer c.busy.End()

	resource := resourceLabel(path)
	start := time.Now()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &NetworkError{Op: "encode " + resource, Err: err}
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &NetworkError{Op: resource, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.sessions != nil {
		if token, err := c.sessions.Token(); err == nil {
			req.Header.Set(c.tokenHeader, token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.observe(resource, observability.OutcomeNetwork, start)
		return nil, &NetworkError{Op: resource, Err: err}
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.observe(resource, observability.OutcomeNetwork, start)
		return nil, &NetworkError{Op: "decode " + resource, Err: err}
	}

	if env.Status != StatusSuccess {
		c.observe(resource, observability.OutcomeRemote, start)
		if c.logger != nil {
			c.logger.Warn("api call rejected",
				slog.String("resource", resource),
				slog.String("status", env.Status),
				slog.String("message", env.Message))
		}
		return nil, &RemoteError{Resource: resource, Message: env.Message}
	}

	c.observe(resource, observability.OutcomeSuccess, start)
	return &env, nil
}

func (c *Client) observe(resource, outcome string, start time.Time) {
	c.metrics.ObserveCall(resource, outcome, time.Since(start))
}

func resourceLabel(path string) string {
	path = strings.TrimLeft(path, "/")
	if i := strings.IndexByte(path, '/'); i > 0 {
		return path[:i]
	}
	return path
}
