// cmd/create-lead/main.go
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"lead-intake/internal/common/config"
	commonhttp "lead-intake/internal/common/http"
	"lead-intake/internal/common/logger"
	"lead-intake/internal/common/observability"
	createlead "lead-intake/internal/functions/crm/create-lead"
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

	// No scrape endpoint in Lambda; only spans are recorded.
	obs := observability.NewNoop(cfg.App.Name)

	handler, err := createlead.NewHandler(createlead.HandlerOptions{
		AppConfig:     cfg,
		Logger:        log,
		HTTPClient:    commonhttp.NewClient(config.GetDuration(cfg.HTTP.Timeout), log).HTTPClient(),
		Observability: obs,
	})
	if err != nil {
		zapLog.Fatal("create-lead handler init failed", zap.Error(err))
	}

	zapLog.Info("Starting create-lead function",
		zap.String("version", cfg.App.Version),
		zap.String("apiDomain", cfg.Zoho.APIDomain),
	)

	lambda.Start(handler.HandleAPIGatewayProxy)
}
