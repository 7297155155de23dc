// Package api is the HTTP surface of the demo service. It wires the
// catalog, graph builder, query matcher, and session state machine into
// JSON endpoints a browser frontend renders from.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/causify-ai/sentinel-kg/pkg/catalog"
	"github.com/causify-ai/sentinel-kg/pkg/config"
	"github.com/causify-ai/sentinel-kg/pkg/graph"
	gql "github.com/causify-ai/sentinel-kg/pkg/graphql"
	"github.com/causify-ai/sentinel-kg/pkg/health"
	"github.com/causify-ai/sentinel-kg/pkg/logging"
	"github.com/causify-ai/sentinel-kg/pkg/metrics"
	"github.com/causify-ai/sentinel-kg/pkg/query"
	"github.com/causify-ai/sentinel-kg/pkg/session"
)

// maxBodyBytes bounds request bodies; every request this API takes is a
// few hundred bytes at most.
const maxBodyBytes = 1 << 16

var validate = validator.New()

// Server is the HTTP API server.
type Server struct {
	cfg     config.Config
	reg     *catalog.Registry
	builder *graph.Builder
	sess    *session.Session
	decider query.Decider
	metrics *metrics.Registry
	checker *health.Checker
	gql     http.Handler
	log     logging.Logger
	start   time.Time
}

// NewServer wires the API server. The registry must already be validated.
func NewServer(cfg config.Config, reg *catalog.Registry, log logging.Logger) (*Server, error) {
	builder := graph.NewBuilder(reg)

	schema, err := gql.GenerateSchema(builder)
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		reg:     reg,
		builder: builder,
		sess:    session.New(session.WithLoadingDelay(cfg.LoadingDelay.Std())),
		decider: query.Decider{RedirectURL: cfg.RedirectURL},
		metrics: metrics.NewRegistry(),
		checker: health.NewChecker(),
		gql:     gql.NewHandler(schema),
		log:     log.With(logging.Component("api")),
		start:   time.Now(),
	}

	s.checker.Register("catalog", s.catalogCheck)
	return s, nil
}

// catalogCheck verifies the catalog still answers lookups. It can only
// fail if construction was skipped, but it gives readiness a real probe.
func (s *Server) catalogCheck() health.Check {
	if s.reg.NodeCount() == 0 || s.reg.EdgeCount() == 0 {
		return health.Check{Status: health.StatusUnhealthy, Message: "catalog is empty"}
	}
	return health.Check{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d nodes, %d edges", s.reg.NodeCount(), s.reg.EdgeCount()),
	}
}

// Handler returns the full middleware-wrapped route tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/health/live", s.handleHealthLive)
	mux.HandleFunc("/health/ready", s.handleHealthReady)
	mux.Handle("/metrics", s.metrics.Handler())

	mux.HandleFunc("/api/v1/graph", s.handleGraph)
	mux.HandleFunc("/api/v1/query", s.handleQuery)
	mux.HandleFunc("/api/v1/chips/", s.handleChip)
	mux.HandleFunc("/api/v1/suggestions", s.handleSuggestions)
	mux.HandleFunc("/api/v1/scenarios", s.handleScenarios)
	mux.HandleFunc("/api/v1/scenario", s.handleScenario)
	mux.HandleFunc("/api/v1/session", s.handleSession)
	mux.HandleFunc("/api/v1/settings", s.handleSettings)
	mux.HandleFunc("/api/v1/toggles", s.handleToggles)
	mux.HandleFunc("/api/v1/info-panels", s.handleInfoPanels)
	mux.HandleFunc("/api/v1/info-panels/", s.handleInfoPanel)
	mux.HandleFunc("/api/v1/preview/next", s.handlePreviewNext)
	mux.HandleFunc("/api/v1/preview/prev", s.handlePreviewPrev)
	mux.Handle("/graphql", s.gql)

	var h http.Handler = mux
	h = s.metricsMiddleware(h)
	h = s.bodyLimitMiddleware(h, maxBodyBytes)
	h = s.corsMiddleware(h)
	h = s.loggingMiddleware(h)
	h = s.requestIDMiddleware(h)
	h = s.panicRecoveryMiddleware(h)
	return h
}

// StartBackgroundTasks launches the periodic work: runtime metric
// refresh and the info panel rotation. Stops when done is closed.
func (s *Server) StartBackgroundTasks(done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.metrics.UpdateRuntime(s.start)
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(s.cfg.InfoRotation.Std())
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.sess.RotateInfo()
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(s.cfg.PreviewRotation.Std())
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.sess.NextPreview()
			}
		}
	}()
}

// respondJSON writes data as the JSON response body.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encode response", logging.Err(err))
	}
}

// respondError writes the uniform error body.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
