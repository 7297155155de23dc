package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/causify-ai/sentinel-kg/pkg/logging"
	"github.com/causify-ai/sentinel-kg/pkg/query"
)

// handleQuery decides whether submitted free text triggers the external
// redirect. POST /api/v1/query {"text": "..."}
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Question text too long")
		return
	}

	decision := s.decider.Decide(req.Text)
	s.metrics.RecordQueryDecision(decision.Match)
	if decision.Match {
		s.log.Info("question matched", logging.Int("text_len", len(req.Text)))
	}
	s.respondJSON(w, http.StatusOK, decision)
}

// handleChip resolves a suggestion chip click.
// POST /api/v1/chips/{index}
func (s *Server) handleChip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/v1/chips/")
	index, err := strconv.Atoi(raw)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Chip index must be an integer")
		return
	}

	decision := s.decider.DecideChip(index)
	s.metrics.ChipClicksTotal.WithLabelValues(query.ResolveChipSelection(index).String()).Inc()
	s.respondJSON(w, http.StatusOK, decision)
}

// handleSuggestions lists the canned question chips.
// GET /api/v1/suggestions
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, query.Suggestions())
}
