package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/indexgen/internal/domain"
	logpkg "github.com/kailas-cloud/indexgen/internal/logger"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrInvalidPatch, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrUnknownArtifact, http.StatusNotFound, CodeArtifactNotFound),
		sentinelHandler(domain.ErrMissingCredential, http.StatusServiceUnavailable, CodeAdvisorUnconfigured),
		sentinelHandler(domain.ErrAnalysisInProgress, http.StatusConflict, CodeAnalysisInProgress),
	}
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

// safeDomainMessage returns a client-facing message without exposing internals.
// Patch errors carry the offending field, so they are passed through whole.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidPatch) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrUnknownArtifact,
		domain.ErrMissingCredential,
		domain.ErrAnalysisInProgress,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
