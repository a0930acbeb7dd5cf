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

	"github.com/SscSPs/merchant_conversion_app/internal/core/services"
	"github.com/SscSPs/merchant_conversion_app/internal/handlers"
	"github.com/SscSPs/merchant_conversion_app/internal/middleware"
	"github.com/SscSPs/merchant_conversion_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Merchant Conversion API
// @version 1.0
// @description Converts merchant fiat amounts into crypto against an in-memory ledger.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	logger.Info("Ledger initialized",
		slog.String("bank_account_balance", cfg.InitialBankBalance.String()),
		slog.String("wallet_balance", cfg.InitialWalletBalance.String()),
		slog.String("conversion_rate", cfg.ConversionRate.String()),
		slog.String("default_percentage", cfg.DefaultPercentage.String()),
	)

	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, header hardening, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Recovery(),
		middleware.SecurityHeaders(cfg.IsProduction),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(cfg), rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
