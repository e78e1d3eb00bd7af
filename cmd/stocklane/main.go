package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stocklane/stocklane/cmd/stocklane/cli"
	"github.com/stocklane/stocklane/internal/accounting"
	"github.com/stocklane/stocklane/internal/app"
	"github.com/stocklane/stocklane/internal/auth"
	"github.com/stocklane/stocklane/internal/catalog"
	"github.com/stocklane/stocklane/internal/contacts"
	"github.com/stocklane/stocklane/internal/expenses"
	"github.com/stocklane/stocklane/internal/notify"
	"github.com/stocklane/stocklane/internal/observability"
	"github.com/stocklane/stocklane/internal/platform/api"
	"github.com/stocklane/stocklane/internal/purchases"
	"github.com/stocklane/stocklane/internal/quotations"
	"github.com/stocklane/stocklane/internal/reports"
	"github.com/stocklane/stocklane/internal/returns"
	"github.com/stocklane/stocklane/internal/sales"
	"github.com/stocklane/stocklane/internal/session"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	sessions := session.NewStore(cfg.SessionFile)
	if err := sessions.Load(); err != nil {
		logger.Error("load session", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	busy := &notify.Busy{}
	notifier := notify.LogNotifier{Logger: logger}

	client := api.NewClient(api.Config{
		BaseURL:     cfg.APIBaseURL,
		TokenHeader: cfg.APITokenHeader,
		Timeout:     cfg.APITimeout,
	}, sessions, logger, metrics, busy)

	opsServer := app.NewOpsServer(app.OpsParams{Logger: logger, Config: cfg, Metrics: metrics})
	go func() {
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops listener", slog.Any("error", err))
		}
	}()

	runner := cli.NewRunner(cli.Deps{
		Logger:     logger,
		Sessions:   sessions,
		Auth:       auth.NewService(client, sessions, logger),
		Catalog:    catalog.NewService(client),
		Contacts:   contacts.NewService(client),
		Purchases:  purchases.NewService(client, notifier, metrics, logger),
		Sales:      sales.NewService(client, notifier, metrics, logger),
		Quotations: quotations.NewService(client, notifier, metrics, logger),
		Returns:    returns.NewService(client, notifier, metrics, logger),
		Expenses:   expenses.NewService(client),
		Accounting: accounting.NewService(client),
		Reports:    reports.NewService(client),
	})

	code := runner.Run(ctx, os.Args[1:])

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = opsServer.Shutdown(shutdownCtx)

	os.Exit(code)
}
