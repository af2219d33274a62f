package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalogsearch/internal/config"
	"github.com/kailas-cloud/catalogsearch/internal/db"
	dbRedis "github.com/kailas-cloud/catalogsearch/internal/db/redis"
	logpkg "github.com/kailas-cloud/catalogsearch/internal/logger"
	"github.com/kailas-cloud/catalogsearch/internal/metrics"
	"github.com/kailas-cloud/catalogsearch/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/catalogsearch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/catalogsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/catalogsearch/internal/usecase/search"
	"github.com/kailas-cloud/catalogsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalogsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Duration("catalog_ttl", cfg.Catalog.CacheTTL()),
	)

	ctx := context.Background()

	// Catalog source: local export or a snapshot published to the store.
	var (
		store  db.Store
		source catalog.Source
	)
	if cfg.UsesStore() {
		store = connectStore(ctx, cfg.Database, logger)
		defer store.Close()

		storeSource := catalog.NewStoreSource(store, cfg.Catalog.Key)
		if cfg.Catalog.SeedPath != "" {
			seedCatalog(ctx, storeSource, cfg.Catalog.SeedPath, logger)
		}
		source = storeSource
	} else {
		source = catalog.NewFileSource(cfg.Catalog.Path)
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	cache := catalog.NewCache(source, cfg.Catalog.CacheTTL(), logger,
		catalog.WithCounter(metrics.CatalogCacheTotal))
	searchSvc := searchuc.New(cache).WithObserver(metrics.SearchRecorder{})

	// Warm the cache; a failure here is reported by /health, not fatal.
	if _, err := searchSvc.Facets(ctx); err != nil {
		logger.Warn("Initial catalog load failed", zap.Error(err))
	}

	// Pass nil interface (not typed nil pointer!) when no store is configured.
	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(pinger, searchSvc)

	server := chiTransport.NewServer(searchSvc, healthSvc, chiTransport.Pagination{
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
	}, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// SIGHUP marks the catalog stale; the next request reloads it.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			cache.Invalidate()
			logger.Info("Catalog invalidated by SIGHUP")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")
	signal.Stop(hup)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// connectStore opens the Redis/Valkey store and waits until it answers.
// Both drivers speak the same string commands through rueidis.
func connectStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) db.Store {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store",
			zap.String("driver", cfg.Driver), zap.Error(err))
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database",
		zap.String("driver", cfg.Driver), zap.Strings("addrs", cfg.Addrs))
	return store
}

// seedCatalog publishes a local export to the store so replicas share one snapshot.
func seedCatalog(ctx context.Context, src *catalog.StoreSource, path string, logger *zap.Logger) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		logger.Fatal("Failed to read catalog seed", zap.String("path", path), zap.Error(err))
	}
	n, err := src.Publish(ctx, data)
	if err != nil {
		logger.Fatal("Failed to publish catalog seed", zap.String("path", path), zap.Error(err))
	}
	logger.Info("Catalog seed published", zap.String("path", path), zap.Int("products", n))
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
