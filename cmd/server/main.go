package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/velobpa/adyen-connector/internal/config"
	webhookHandler "github.com/velobpa/adyen-connector/internal/handlers/webhook"
	"github.com/velobpa/adyen-connector/internal/middleware"
	"github.com/velobpa/adyen-connector/internal/services/delivery"
	"github.com/velobpa/adyen-connector/internal/services/notification"
	httpclient "github.com/velobpa/adyen-connector/pkg/http"
	"github.com/velobpa/adyen-connector/pkg/logging"
	pkgmiddleware "github.com/velobpa/adyen-connector/pkg/middleware"
	"github.com/velobpa/adyen-connector/pkg/observability"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting adyen-connector",
		zap.String("version", "0.1.0"),
	)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Resolve credentials from a remote secrets backend when configured
	if err := resolveCredentials(ctx, cfg, logger); err != nil {
		logger.Fatal("Failed to resolve credentials", zap.Error(err))
	}

	portsLogger := logging.NewZapLogger(logger)

	// Inbound processing pipeline
	processor := notification.NewProcessor(notification.Options{
		MerchantAccount:      cfg.Adyen.MerchantAccount,
		HMACKey:              cfg.Adyen.HMACKey,
		ValidateHMAC:         cfg.Webhook.ValidateHMAC,
		EnforceMerchantScope: cfg.Webhook.EnforceMerchantScope,
		AcceptAllEvents:      cfg.Webhook.AcceptAllEvents,
		AcceptedEvents:       cfg.Webhook.AcceptedEvents,
	}, portsLogger)

	var deliverer webhookHandler.Deliverer
	if len(cfg.Delivery.SinkURLs) > 0 {
		deliveryClient := httpclient.NewHTTPClient(
			httpclient.DeliveryClientConfig(),
			time.Duration(cfg.Delivery.Timeout)*time.Second,
		)
		deliverer = delivery.NewService(delivery.Options{
			SinkURLs:      cfg.Delivery.SinkURLs,
			SigningSecret: cfg.Delivery.SigningSecret,
			MaxRetries:    cfg.Delivery.MaxRetries,
		}, deliveryClient, logger)
		logger.Info("Downstream delivery enabled",
			zap.Int("sinks", len(cfg.Delivery.SinkURLs)),
		)
	} else {
		logger.Warn("No delivery sinks configured; accepted notifications are acknowledged and dropped")
	}

	handler := webhookHandler.NewHandler(processor, deliverer, logger)

	// HTTP wiring: rate limiting and security headers around the webhook path
	rateLimiter := pkgmiddleware.NewRateLimiter(cfg.Webhook.RateLimit, cfg.Webhook.RateBurst)
	defer rateLimiter.Shutdown()
	securityHeaders := middleware.NewSecurityHeaders(cfg.Logger.Development)

	mux := http.NewServeMux()
	mux.HandleFunc(cfg.Webhook.Path, rateLimiter.HTTPHandlerFunc(handler.HandleWebhook))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      securityHeaders.Middleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	metricsServer := observability.StartMetricsServer(fmt.Sprintf("%d", cfg.Server.MetricsPort))
	logger.Info("Metrics server started", zap.Int("port", cfg.Server.MetricsPort))

	go func() {
		logger.Info("Webhook server listening",
			zap.String("addr", server.Addr),
			zap.String("path", cfg.Webhook.Path),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Webhook server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Shutting down", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Webhook server shutdown failed", zap.Error(err))
	}
	if err := observability.ShutdownMetricsServer(metricsServer); err != nil {
		logger.Error("Metrics server shutdown failed", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}

// initLogger initializes the logger from the environment before
// configuration has been parsed
func initLogger() *zap.Logger {
	if os.Getenv("LOG_DEVELOPMENT") == "true" {
		logger, _ := zap.NewDevelopment()
		return logger
	}

	zapCfg := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	logger, _ := zapCfg.Build()
	return logger
}
