package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sitesearch/internal/config"
	"github.com/kailas-cloud/sitesearch/internal/index"
	logpkg "github.com/kailas-cloud/sitesearch/internal/logger"
	"github.com/kailas-cloud/sitesearch/internal/metrics"
	"github.com/kailas-cloud/sitesearch/internal/repository/ranked"
	chiTransport "github.com/kailas-cloud/sitesearch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/sitesearch/internal/usecase/health"
	"github.com/kailas-cloud/sitesearch/internal/usecase/render"
	searchuc "github.com/kailas-cloud/sitesearch/internal/usecase/search"
	sessionuc "github.com/kailas-cloud/sitesearch/internal/usecase/session"
	suggestuc "github.com/kailas-cloud/sitesearch/internal/usecase/suggest"
	"github.com/kailas-cloud/sitesearch/internal/version"
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

	logger.Info("Starting sitesearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("index_source", cfg.Index.Source),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Load the document index. A failed load is fatal; it must never be
	// mistaken for an empty index.
	ctx := context.Background()
	loader := index.NewLoader(
		index.WithTimeout(time.Duration(cfg.Index.FetchTimeoutSec) * time.Second),
	)
	idx, err := loader.Load(ctx, cfg.Index.Source)
	if err != nil {
		logger.Fatal("Failed to load index", zap.Error(err))
	}
	logger.Info("Index loaded",
		zap.Int("documents", idx.Len()),
		zap.Int("vocabulary", len(idx.Vocabulary())),
	)
	metrics.IndexDocuments.Set(float64(idx.Len()))

	// Ranked-search backend over the loaded documents
	searcher, err := ranked.New(idx.Documents(), ranked.Weights{
		Title: cfg.Search.TitleWeight,
		Facet: cfg.Search.FacetWeight,
		Body:  cfg.Search.BodyWeight,
	})
	if err != nil {
		logger.Fatal("Failed to build search index", zap.Error(err))
	}
	defer func() { _ = searcher.Close() }()

	// Create use case services
	searchSvc := searchuc.New(searcher, idx)
	suggestSvc := suggestuc.New(idx.Vocabulary(), cfg.UI.SuggestionLimit)

	renderer, err := render.New(cfg.UI.ViewMode)
	if err != nil {
		logger.Fatal("Invalid view mode", zap.Error(err))
	}

	sessionSvc := sessionuc.New(searchSvc, suggestSvc, renderer,
		sessionuc.WithPageSize(cfg.UI.PageSize))
	healthSvc := healthuc.New(idx, searcher)

	// Create chi server
	server := chiTransport.NewServer(sessionSvc, suggestSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
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

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
