// Package main is the entry point for the auth-gate service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"auth-gate/config"
	"auth-gate/internal/adapter/gateway"
	"auth-gate/internal/adapter/handler"
	"auth-gate/internal/driver"
	"auth-gate/internal/usecase"
	"auth-gate/metrics"
	"auth-gate/middleware"
	"auth-gate/utils/logger"
	"auth-gate/utils/otel"
)

func main() {
	// Healthcheck subcommand for container probes in distroless images.
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx := context.Background()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if otelShutdown != nil {
			if err := otelShutdown(shutdownCtx); err != nil {
				fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
			}
		}
	}()

	// Initialize structured logger with OTel support
	log := logger.Init(otelCfg.Enabled)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"port", cfg.Port,
		"member_management_url", cfg.MemberManagementURL,
		"event_stream", cfg.EventStream,
		"rejection_denominator", cfg.RejectionDenom)

	// Initialize Redis driver (shared by cache and event stream)
	redisDriver, err := driver.NewRedisDriver(cfg.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisDriver.Close()

	if err := redisDriver.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "Redis not reachable at startup", "error", err)
		metrics.SetRedisDisconnected()
	} else {
		metrics.SetRedisConnected()
	}

	// Initialize collaborators
	memberClient := driver.NewMemberClient(cfg.MemberManagementURL, cfg.MemberTimeout)
	cacheGateway := gateway.NewCacheGateway(redisDriver, cfg.CacheTTL)
	eventGateway := gateway.NewEventGateway(redisDriver, cfg.EventStream, log)
	directoryGateway := gateway.NewDirectoryGateway(memberClient)

	authUsecase := usecase.NewAuthenticateUser(
		cacheGateway,
		directoryGateway,
		usecase.NewRandomRejection(cfg.RejectionDenom),
		eventGateway,
		metrics.RejectionCounter{},
		log,
	)

	txlog := logger.NewTransactionLogger(log)
	authHandler := handler.NewAuthHandler(authUsecase, txlog)
	healthHandler := handler.NewHealthHandler(redisDriver)

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(ctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(ctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(echomw.Recover())
	e.Use(middleware.SecurityHeaders())

	// Register routes
	e.POST("/authenticate", authHandler.Handle)
	e.GET("/health", healthHandler.Handle)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Start server
	address := fmt.Sprintf(":%s", cfg.Port)

	go func() {
		slog.InfoContext(ctx, "starting auth-gate server", "address", address)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal, then shut down gracefully.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.InfoContext(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9600"
	}

	client := &http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}

	return nil
}
