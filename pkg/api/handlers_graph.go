package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/causify-ai/sentinel-kg/pkg/health"
)

// handleGraph serves the element lists for the requested layer toggles.
// GET /api/v1/graph?layers=physics,statistical,anomaly
//
// Unknown tokens are ignored; no layers param means only the always-on
// raw and outcome nodes. When the param is absent entirely the session's
// current toggles apply, so the frontend can simply re-fetch after a
// toggle change.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var layers []string
	if raw, ok := r.URL.Query()["layers"]; ok {
		for _, chunk := range raw {
			for _, l := range strings.Split(chunk, ",") {
				if l = strings.TrimSpace(l); l != "" {
					layers = append(layers, l)
				}
			}
		}
	} else {
		layers = s.sess.Toggles()
	}

	start := time.Now()
	elements := s.builder.Build(layers)
	s.metrics.RecordGraphBuild(len(elements.Nodes), len(elements.Edges), time.Since(start))

	s.respondJSON(w, http.StatusOK, elements)
}

// handleHealth runs the full check set.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	resp := s.checker.Check()
	status := http.StatusOK
	if resp.Status != health.StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	s.respondJSON(w, status, resp)
}

func (s *Server) handleHealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, s.checker.Live())
}

func (s *Server) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	s.handleHealth(w, r)
}
