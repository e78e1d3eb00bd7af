package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/stocklane/stocklane/internal/observability"
)

// OpsParams groups dependencies for the local operations listener.
type OpsParams struct {
	Logger  *slog.Logger
	Config  *Config
	Metrics *observability.Metrics
}

// NewOpsRouter builds the router serving /healthz and /metrics.
func NewOpsRouter(p OpsParams) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})

	limit := 120
	if p.Config != nil && p.Config.OpsRequestPerMin > 0 {
		limit = p.Config.OpsRequestPerMin
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(secureMiddleware.Handler)
	r.Use(httprate.LimitByIP(limit, time.Minute))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())

	return r
}

// NewOpsServer wraps the ops router in an http.Server with timeouts.
func NewOpsServer(p OpsParams) *http.Server {
	addr := "127.0.0.1:9190"
	readTimeout := 10 * time.Second
	writeTimeout := 10 * time.Second
	if p.Config != nil {
		if p.Config.OpsAddr != "" {
			addr = p.Config.OpsAddr
		}
		if p.Config.OpsReadTimeout > 0 {
			readTimeout = p.Config.OpsReadTimeout
		}
		if p.Config.OpsWriteTimeout > 0 {
			writeTimeout = p.Config.OpsWriteTimeout
		}
	}
	return &http.Server{
		Addr:         addr,
		Handler:      NewOpsRouter(p),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
