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

	"municipal-budget/internal/config"
	"municipal-budget/internal/database"
	"municipal-budget/internal/handlers"
	"municipal-budget/internal/messaging"
	"municipal-budget/internal/middleware"
	"municipal-budget/internal/repositories"
	"municipal-budget/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(middleware.NewTraceHandler(handler))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// Amounts are rendered as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	notifier := services.NewNoopImportNotifier()
	if cfg.MessagingEnabled() {
		publisher, err := messaging.NewPublisher(cfg.Messaging.AMQPURL, cfg.Messaging.Exchange, cfg.Messaging.RoutingKey, logger)
		if err != nil {
			return err
		}
		defer publisher.Close()
		notifier = publisher
		logger.Info("import events enabled", "exchange", cfg.Messaging.Exchange)
	}

	if cfg.Insight.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, insight requests will fail")
	}

	budgetRepo := repositories.NewBudgetRepository(db.DB)
	importService := services.NewImportService(budgetRepo, notifier, metrics, logger)
	budgetService := services.NewBudgetService(budgetRepo, metrics, logger)
	insightService := services.NewInsightService(
		services.NewGeminiClient(&cfg.Insight, metrics, logger),
		cfg.Insight.APIKey != "",
		metrics,
		logger,
	)

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	ipExtractor, err := middleware.NewIPExtractor(cfg.Security.TrustedProxies)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.IPExtractor = ipExtractor
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(limiter.Middleware())
	e.Use(echomw.BodyLimit(cfg.Server.MaxUploadSize))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterRoutes(e, handlers.Handlers{
		Budget:  handlers.NewBudgetHandler(budgetService),
		Import:  handlers.NewImportHandler(importService),
		Insight: handlers.NewInsightHandler(insightService),
		Health:  handlers.NewHealthCheckHandler(db),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting budget api", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
