package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sitesearch/internal/domain"
	"github.com/kailas-cloud/sitesearch/internal/domain/query"
	"github.com/kailas-cloud/sitesearch/internal/metrics"
	healthuc "github.com/kailas-cloud/sitesearch/internal/usecase/health"
	sessionuc "github.com/kailas-cloud/sitesearch/internal/usecase/session"
	suggestuc "github.com/kailas-cloud/sitesearch/internal/usecase/suggest"
)

// ErrorCode identifies an API error category.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest    ErrorCode = "bad_request"
	CodeIndexNotReady ErrorCode = "index_not_ready"
	CodeSearchFailed  ErrorCode = "search_failed"
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search session over HTTP. The request URL carries the
// full query state, so every handler is a pure function of its URL.
type Server struct {
	session       *sessionuc.Service
	suggest       *suggestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	session *sessionuc.Service,
	suggest *suggestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		session: session,
		suggest: suggest,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrIndexNotLoaded, http.StatusServiceUnavailable, CodeIndexNotReady),
		sentinelHandler(domain.ErrSearchFailed, http.StatusBadGateway, CodeSearchFailed),
	}
	return s
}

// Routes mounts the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/search", s.Search)
	r.Get("/api/suggest", s.Suggest)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Search handles GET /api/search?q=&f=&p=. The query string is the session
// state; the response is the full render model for it.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	page, err := s.session.Recompute(r.Context(), r.URL.String())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.SearchRequestsTotal.WithLabelValues(
		strconv.FormatBool(page.Query.Text != ""),
		strconv.FormatBool(len(page.Query.Filters) > 0),
	).Inc()
	metrics.SearchResults.Observe(float64(page.Pagination.TotalResults))

	writeJSON(w, http.StatusOK, page)
}

// SuggestResponse is the payload for GET /api/suggest.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggest handles GET /api/suggest?q=&f=. Active filters are excluded from
// the suggestion list.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get(query.ParamText)
	active := r.URL.Query()[query.ParamFilter]

	metrics.SuggestRequestsTotal.Inc()

	got := s.suggest.Suggest(text, active)
	if got == nil {
		got = []string{}
	}
	writeJSON(w, http.StatusOK, SuggestResponse{Suggestions: got})
}

// HealthResponse is the payload for GET /healthz.
type HealthResponse struct {
	Status    healthuc.Status                 `json:"status"`
	Checks    map[string]healthuc.CheckResult `json:"checks"`
	Documents int                             `json:"documents"`
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    report.Status,
		Checks:    report.Checks,
		Documents: report.Documents,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrIndexNotLoaded,
		domain.ErrSearchFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
