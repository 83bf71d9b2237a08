package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/moneysplitter/internal/auth"
	"github.com/mmynk/moneysplitter/internal/config"
	"github.com/mmynk/moneysplitter/internal/events"
	"github.com/mmynk/moneysplitter/internal/events/kafka"
	"github.com/mmynk/moneysplitter/internal/metrics"
	"github.com/mmynk/moneysplitter/internal/middleware"
	"github.com/mmynk/moneysplitter/internal/service"
	"github.com/mmynk/moneysplitter/internal/storage/sqlite"
	"github.com/mmynk/moneysplitter/pkg/api/apiconnect"
	"github.com/mmynk/moneysplitter/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.EventsEnabled() {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		slog.Info("Publishing settlement events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	defer publisher.Close()

	mux := http.NewServeMux()

	opts := []service.Option{
		service.WithPublisher(publisher),
		service.WithSettleConcurrency(cfg.SettleConcurrency),
	}
	if cfg.MetricsEnabled {
		registry := metrics.NewRegistry()
		opts = append(opts, service.WithMetrics(metrics.New(registry)))
		mux.Handle("/metrics", metrics.Handler(registry))
	}

	// Auth runs first so the logging interceptor sees the client.
	var interceptors []connect.Interceptor
	if cfg.AuthEnabled() {
		interceptors = append(interceptors, middleware.RequireAuth(auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)))
	} else {
		slog.Warn("JWT_SECRET not set, RPCs are unauthenticated")
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor())
	handlerOpts := connect.WithInterceptors(interceptors...)

	// Register Connect services
	mux.Handle(apiconnect.NewSettlementServiceHandler(service.NewSettlementService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewGroupServiceHandler(service.NewGroupService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewLedgerServiceHandler(service.NewLedgerService(store, opts...), handlerOpts))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
