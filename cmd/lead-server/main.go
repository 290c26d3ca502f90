// cmd/lead-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"lead-intake/internal/common/config"
	commonhttp "lead-intake/internal/common/http"
	"lead-intake/internal/common/logger"
	"lead-intake/internal/common/observability"
	createlead "lead-intake/internal/functions/crm/create-lead"
	"lead-intake/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	obs, err := observability.New(cfg.App.Name, prometheus.DefaultRegisterer)
	if err != nil {
		zapLog.Warn("otel prometheus exporter unavailable, continuing without it", zap.Error(err))
	}
	defer obs.Shutdown()

	if cfg.Zoho.ClientID == "" || cfg.Zoho.RefreshToken == "" {
		zapLog.Warn("Zoho credentials are not configured; lead requests will fail upstream")
	}

	handler, err := createlead.NewHandler(createlead.HandlerOptions{
		AppConfig:     cfg,
		Logger:        log,
		HTTPClient:    commonhttp.NewClient(config.GetDuration(cfg.HTTP.Timeout), log).HTTPClient(),
		Observability: obs,
	})
	if err != nil {
		zapLog.Fatal("create-lead handler init failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.NewRouter(handler, server.RouterOptions{Version: cfg.App.Version}),
	}

	go func() {
		zapLog.Info("Lead server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("Error during server shutdown", zap.Error(err))
	}

	zapLog.Info("Lead server stopped")
}
