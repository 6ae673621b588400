package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oncoscreen/oncoscreen-backend/internal/catalog"
)

// ─── GET /api/assessments ─────────────────────────────────────────────────────

// assessmentSummary is the list-view shape: enough to render a picker without
// shipping every question.
type assessmentSummary struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	Scheme          string `json:"scheme"`
	QuestionCount   int    `json:"question_count"`
	MinimumRequired int    `json:"minimum_required,omitempty"`
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	defs := catalog.All()
	summaries := make([]assessmentSummary, 0, len(defs))
	for _, def := range defs {
		summaries = append(summaries, assessmentSummary{
			ID:              def.ID,
			DisplayName:     def.DisplayName,
			Scheme:          string(def.Scheme),
			QuestionCount:   len(def.Questions),
			MinimumRequired: def.MinimumRequired,
		})
	}
	respond(w, http.StatusOK, map[string]any{"assessments": summaries})
}

// ─── GET /api/assessments/{assessmentID} ──────────────────────────────────────

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	def, ok := catalog.Get(chi.URLParam(r, "assessmentID"))
	if !ok {
		respondErr(w, http.StatusNotFound, "unknown assessment")
		return
	}
	respond(w, http.StatusOK, def)
}
