package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/causify-ai/sentinel-kg/pkg/logging"
	"github.com/causify-ai/sentinel-kg/pkg/session"
)

// handleScenarios lists the scenario chips.
// GET /api/v1/scenarios
func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, session.Scenarios())
}

// handleScenario submits the chosen scenario text. Accepted text starts
// the loading stage; anything else returns an advisory message with the
// stage unchanged. POST /api/v1/scenario {"scenario": "..."}
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Scenario text too long")
		return
	}

	result := s.sess.SubmitScenario(req.Scenario)
	switch {
	case result.Stage == session.StageLoading:
		s.metrics.ScenariosTotal.WithLabelValues("accepted").Inc()
		s.log.Info("scenario accepted", logging.Stage(string(result.Stage)))
	case result.Message == session.MsgEmptySelection:
		s.metrics.ScenariosTotal.WithLabelValues("empty").Inc()
	case result.Message == session.MsgUnsupportedScenario:
		s.metrics.ScenariosTotal.WithLabelValues("unsupported").Inc()
	default:
		s.metrics.ScenariosTotal.WithLabelValues("ignored").Inc()
	}
	s.respondJSON(w, http.StatusOK, result)
}

// handleSession reports the current session state.
// GET /api/v1/session
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	resp := SessionResponse{
		Stage:        string(s.sess.Stage()),
		Scenario:     s.sess.Scenario(),
		Toggles:      s.sess.Toggles(),
		InfoIndex:    s.sess.InfoIndex(),
		PreviewIndex: s.sess.PreviewIndex(),
	}
	if resp.Stage == string(session.StageLoading) {
		resp.LoadingStatus = session.LoadingStatus
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// handleSettings returns the session to the select screen.
// POST /api/v1/settings
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.sess.OpenSettings()
	s.respondJSON(w, http.StatusOK, session.Result{Stage: session.StageSelect})
}

// handleToggles replaces the enabled layer set.
// POST /api/v1/toggles {"layers": ["physics", "anomaly"]}
func (s *Server) handleToggles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req TogglesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Too many layer tokens")
		return
	}

	s.sess.SetToggles(req.Layers)
	s.respondJSON(w, http.StatusOK, map[string][]string{"toggles": s.sess.Toggles()})
}

// handleInfoPanels lists the rotating info panels.
// GET /api/v1/info-panels
func (s *Server) handleInfoPanels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, session.InfoPanels())
}

// handleInfoPanel returns one panel by rotation index; any integer maps
// onto the fixed rotation. GET /api/v1/info-panels/{index}
func (s *Server) handleInfoPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/v1/info-panels/")
	index, err := strconv.Atoi(raw)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Panel index must be an integer")
		return
	}
	s.respondJSON(w, http.StatusOK, session.InfoPanelAt(index))
}

// handlePreviewNext advances the preview image. POST /api/v1/preview/next
func (s *Server) handlePreviewNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, PreviewResponse{Index: s.sess.NextPreview()})
}

// handlePreviewPrev steps the preview image back. POST /api/v1/preview/prev
func (s *Server) handlePreviewPrev(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, PreviewResponse{Index: s.sess.PrevPreview()})
}
