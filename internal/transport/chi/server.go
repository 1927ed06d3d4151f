// Package chi is the HTTP transport: request decoding, response
// envelopes and the mapping from domain errors to status codes.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/usecase/health"
	"github.com/cadeso/searchapi/internal/usecase/pipeline"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, meta metaDTO) bool

// Server exposes the search pipeline over HTTP.
type Server struct {
	pipeline      *pipeline.Service
	health        *health.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates the HTTP API server.
func NewServer(p *pipeline.Service, h *health.Service, logger *zap.Logger) *Server {
	s := &Server{
		pipeline: p,
		health:   h,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "query_error"),
		sentinelHandler(domain.ErrQueryFailed, http.StatusInternalServerError, "query_error"),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/search", s.handleSearch)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleSearch handles POST /search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_request",
			"Invalid request body: "+err.Error(), "", metaDTO{})
		return
	}

	resp, err := s.pipeline.Run(r.Context(), pipeline.Request{
		Query:  req.Query,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		s.handleDomainError(w, err, metaFromTimings(resp.Timings))
		return
	}

	writeJSON(w, http.StatusOK, successFromResponse(resp))
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != health.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthFromReport(report))
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error, meta metaDTO) {
	s.logger.Warn("request failed", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err, meta) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeErrorResponse(w, http.StatusInternalServerError, "internal_error", "internal error", "", meta)
}

// safeDomainMessage returns a sentinel error message for the client
// without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrStoreUnavailable,
		domain.ErrQueryFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, meta metaDTO) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeErrorResponse(w, status, code, safeDomainMessage(err), "", meta)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message, suggestion string, meta metaDTO) {
	writeJSON(w, status, errorResponse{
		Success:    false,
		Error:      code,
		Message:    message,
		Suggestion: suggestion,
		Meta:       meta,
	})
}
