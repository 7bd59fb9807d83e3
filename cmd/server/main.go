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

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/secretsanta/internal/lifecycle"
	"github.com/mmynk/secretsanta/internal/metrics"
	"github.com/mmynk/secretsanta/internal/middleware"
	"github.com/mmynk/secretsanta/internal/service"
	"github.com/mmynk/secretsanta/internal/storage/jsonfile"
	"github.com/mmynk/secretsanta/pkg/proto/protoconnect"
	"github.com/mmynk/secretsanta/pkg/logging"
)

func main() {
	cfg, err := loadConfig(".env")
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.SetupWithOptions(os.Stderr, cfg.Log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	storeOpts := []jsonfile.Option{
		jsonfile.WithLockTimeout(cfg.LockTimeout),
		jsonfile.WithLogger(logger),
		jsonfile.WithMetrics(m),
	}
	if cfg.NoLock {
		slog.Warn("File locking disabled, concurrent writers may corrupt updates")
		storeOpts = append(storeOpts, jsonfile.WithoutLock())
	}
	store, err := jsonfile.New(cfg.DataFile, storeOpts...)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "data_file", cfg.DataFile, "lock_timeout", cfg.LockTimeout)

	groups := lifecycle.NewService(store,
		lifecycle.WithMetrics(m),
		lifecycle.WithLogger(logger),
	)

	mux := http.NewServeMux()
	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(
		service.NewGroupService(groups),
		connect.WithInterceptors(middleware.LoggingInterceptor(logger)),
	)
	mux.Handle(groupPath, groupHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	// h2c serves HTTP/2 without TLS for Connect clients.
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, Duplicate-Name")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
