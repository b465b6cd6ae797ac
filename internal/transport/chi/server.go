package chi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/indexgen/internal/domain"
	domart "github.com/kailas-cloud/indexgen/internal/domain/artifact"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
	"github.com/kailas-cloud/indexgen/internal/domain/suggestion"
	advisoruc "github.com/kailas-cloud/indexgen/internal/usecase/advisor"
	artifactuc "github.com/kailas-cloud/indexgen/internal/usecase/artifact"
	healthuc "github.com/kailas-cloud/indexgen/internal/usecase/health"
	settingsuc "github.com/kailas-cloud/indexgen/internal/usecase/settings"
)

const maxBodyBytes = 1 << 20

// Server serves the indexgen HTTP API and UI.
type Server struct {
	settings      *settingsuc.Service
	artifacts     *artifactuc.Service
	advisor       *advisoruc.Service
	health        *healthuc.Service
	initial       generator.Config
	apiKeys       []string
	page          []byte
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP server. initial is the configuration restored by
// POST /api/config/reset.
func NewServer(
	settings *settingsuc.Service,
	artifacts *artifactuc.Service,
	advisor *advisoruc.Service,
	health *healthuc.Service,
	initial generator.Config,
	logger *zap.Logger,
) (*Server, error) {
	page, err := renderIndex()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		settings:      settings,
		artifacts:     artifacts,
		advisor:       advisor,
		health:        health,
		initial:       initial,
		page:          page,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}, nil
}

// WithAPIKeys enables bearer authentication on the /api routes.
func (s *Server) WithAPIKeys(keys []string) *Server {
	s.apiKeys = keys
	return s
}

// Routes registers every handler on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Index)
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(s.apiKeys))

		r.Get("/config", s.GetConfig)
		r.Patch("/config", s.PatchConfig)
		r.Post("/config/reset", s.ResetConfig)

		r.Get("/artifacts", s.ListArtifacts)
		r.Get("/artifacts/{name}", s.GetArtifact)

		r.Post("/advisor/analyze", s.Analyze)
	})
}

// Index handles GET /.
func (s *Server) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.page)
}

// GetConfig handles GET /api/config.
func (s *Server) GetConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, configToResponse(s.settings.Get()))
}

// PatchConfig handles PATCH /api/config.
func (s *Server) PatchConfig(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cfg, err := s.settings.Patch(raw)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, configToResponse(cfg))
}

// ResetConfig handles POST /api/config/reset.
func (s *Server) ResetConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, configToResponse(s.settings.Reset(s.initial)))
}

// ListArtifacts handles GET /api/artifacts.
func (s *Server) ListArtifacts(w http.ResponseWriter, _ *http.Request) {
	items := s.artifacts.List()
	resp := ArtifactListResponse{Artifacts: make([]ArtifactResponse, len(items))}
	for i, a := range items {
		resp.Artifacts[i] = artifactToResponse(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetArtifact handles GET /api/artifacts/{name}. The body is the raw
// generator output; ?download=1 turns it into an attachment.
func (s *Server) GetArtifact(w http.ResponseWriter, r *http.Request) {
	a, err := s.artifacts.Get(domart.Name(chi.URLParam(r, "name")))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if wantsDownload(r) {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
			"filename": a.FileName,
		}))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, a.Content)
}

func wantsDownload(r *http.Request) bool {
	switch strings.ToLower(r.URL.Query().Get("download")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Analyze handles POST /api/advisor/analyze. The collection name is taken
// from the current configuration.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.ProjectDescription) == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "projectDescription is required")
		return
	}

	items, err := s.advisor.Analyze(r.Context(), suggestion.Request{
		ProjectDescription: req.ProjectDescription,
		CollectionName:     s.settings.Get().CollectionName,
		ExistingSchema:     req.ExistingSchema,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisInProgress) {
			w.Header().Set("Retry-After", "1")
		}
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestionsToResponse(items))
}

// HealthCheck handles GET /health. A degraded advisor still answers 200:
// artifacts keep working without a credential.
func (s *Server) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthToResponse(s.health.Check()))
}
