package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/holisticrecovery/recovery-platform/internal/api/router"
	"github.com/holisticrecovery/recovery-platform/internal/awsconfig"
	"github.com/holisticrecovery/recovery-platform/internal/booking"
	"github.com/holisticrecovery/recovery-platform/internal/catalog"
	appconfig "github.com/holisticrecovery/recovery-platform/internal/config"
	"github.com/holisticrecovery/recovery-platform/internal/http/handlers"
	"github.com/holisticrecovery/recovery-platform/internal/notify"
	"github.com/holisticrecovery/recovery-platform/internal/observability/metrics"
	"github.com/holisticrecovery/recovery-platform/internal/session"
	"github.com/holisticrecovery/recovery-platform/internal/submission"
	"github.com/holisticrecovery/recovery-platform/pkg/logging"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting recovery-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"delivery_provider", cfg.DeliveryProvider,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)

	cat := catalog.Default()

	sender, err := buildSender(cfg, logger)
	if err != nil {
		logger.Error("failed to configure email sender", "error", err)
		os.Exit(1)
	}
	deliverer := notify.NewEmailDeliverer(sender, cat, notify.EmailDelivererConfig{
		OperatorEmail: cfg.OperatorEmail,
		OperatorName:  cfg.OperatorName,
	}, logger)

	sessions := session.NewStore(session.Deps{
		Catalog:   cat,
		Deliverer: deliverer,
		Lifecycle: submission.Config{
			SuccessWindow:   cfg.SuccessDisplayWindow,
			DeliveryTimeout: cfg.DeliveryTimeout,
		},
		Logger:  logger,
		Metrics: bookingMetrics,
	})
	defer sessions.Shutdown()

	var drafts booking.DraftStore
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Error("redis unreachable, falling back to in-memory drafts", "error", err)
			drafts = booking.NewMemoryDraftStore()
		} else {
			drafts = booking.NewRedisDraftStore(redisClient, cfg.DraftTTL)
			logger.Info("draft autosave backed by redis", "addr", cfg.RedisAddr)
		}
	} else {
		drafts = booking.NewMemoryDraftStore()
	}

	routerCfg := &router.Config{
		Logger: logger,
		Booking: handlers.NewBookingHandler(handlers.BookingConfig{
			Sessions: sessions,
			Drafts:   drafts,
			Logger:   logger,
		}),
		Catalog:            handlers.NewCatalogHandler(cat),
		Content:            handlers.NewContentHandler(nil, bookingMetrics),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// buildSender picks the email backend from config. The stub keeps local
// development working without provider credentials.
func buildSender(cfg *appconfig.Config, logger *logging.Logger) (notify.EmailSender, error) {
	switch cfg.DeliveryProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender == nil {
			return nil, fmt.Errorf("sendgrid selected but SENDGRID_API_KEY is empty")
		}
		return sender, nil
	case "ses":
		awsCfg, err := awsconfig.Load(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger), nil
	case "stub":
		return notify.NewStubEmailSender(logger), nil
	default:
		return nil, fmt.Errorf("unknown delivery provider %q", cfg.DeliveryProvider)
	}
}
