package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"manuparts/internal/api"
	"manuparts/internal/auth"
	"manuparts/internal/cache"
	"manuparts/internal/config"
	"manuparts/internal/domain"
	"manuparts/internal/logging"
	"manuparts/internal/metrics"
	"manuparts/internal/payments"
	"manuparts/internal/service"
	"manuparts/internal/store"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Connect(ctx, cfg.Mongo, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("init store")
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(closeCtx)
	}()

	productCache := initProductCache(cfg, &logger)

	tokens := auth.NewTokenIssuer(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTL)*time.Minute)
	gateway := payments.NewStripeGateway(cfg.Stripe.SecretKey, &logger)

	svc := api.Services{
		Products: service.NewProductService(db, productCache, &logger),
		Bookings: service.NewBookingService(db, &logger),
		Users:    service.NewUserService(db, tokens, &logger),
		Reviews:  service.NewReviewService(db),
		Payments: service.NewPaymentService(gateway, cfg.Stripe.Currency),
	}

	server := api.NewServer(cfg.Server, cfg.RateLimit, tokens, svc, db, &logger)

	startMetrics(ctx, cfg, &logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	logger.Info().Int("port", cfg.Server.Port).Msg("API server started")

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("http shutdown")
	}

	logger.Info().Msg("API server stopped")
	return nil
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

// initProductCache builds the redis-backed product cache with an in-process
// fallback. A missing or unreachable redis is not fatal.
func initProductCache(cfg *config.Config, logger *zerolog.Logger) domain.ProductCache {
	ttl := time.Duration(cfg.Redis.CacheTTL) * time.Second
	memory := cache.NewMemoryProductCache(ttl)

	if cfg.Redis.Address == "" {
		return memory
	}

	client := cache.NewRedisClient(cfg.Redis)
	if err := cache.Ping(context.Background(), client); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, continuing with memory cache")
		_ = client.Close()
		return memory
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	primary := cache.NewRedisProductCache(client, ttl)
	return cache.NewFailoverProductCache(primary, memory, logger)
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	port := cfg.Monitoring.PrometheusPort
	if port == 0 {
		port = 9090
	}
	go startMetricsServer(ctx, port, logger)
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
