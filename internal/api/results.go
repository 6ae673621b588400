package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/oncoscreen/oncoscreen-backend/internal/catalog"
	"github.com/oncoscreen/oncoscreen-backend/internal/scoring"
)

// ─── GET /api/session/{sessionID}/result ─────────────────────────────────────

// insufficientAnswersResponse tells the frontend exactly how far the user is
// from a result, so it can render "answer N more questions".
type insufficientAnswersResponse struct {
	Error           string `json:"error"`
	Answered        int    `json:"answered"`
	MinimumRequired int    `json:"minimum_required"`
}

// handleGetResult scores the session's answers. For symptom checklists that
// have not cleared their minimum-answer gate it responds 409 rather than a
// generic 4xx: the session state, not the request, is what blocks the result.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	session := sessionFromCtx(r)

	def, ok := catalog.Get(session.AssessmentID)
	if !ok {
		s.respondInternalErr(w, r, fmt.Errorf("session %s references unknown assessment %q", session.ID, session.AssessmentID))
		return
	}

	switch def.Scheme {
	case catalog.SchemeWeightedPercentage:
		answers, err := s.store.WeightedAnswers(session.AnonToken)
		if err != nil {
			s.respondInternalErr(w, r, err)
			return
		}
		respond(w, http.StatusOK, scoring.ScoreWeighted(def, answers))

	case catalog.SchemeBooleanThreshold:
		answers, err := s.store.BooleanAnswers(session.AnonToken)
		if err != nil {
			s.respondInternalErr(w, r, err)
			return
		}
		result, err := scoring.ScoreBoolean(def, answers)
		if errors.Is(err, scoring.ErrInsufficientAnswers) {
			respond(w, http.StatusConflict, insufficientAnswersResponse{
				Error:           "not enough answers to produce a result",
				Answered:        len(answers),
				MinimumRequired: def.MinimumRequired,
			})
			return
		}
		if err != nil {
			s.respondInternalErr(w, r, err)
			return
		}
		respond(w, http.StatusOK, result)
	}
}

// ─── GET /api/session/{sessionID}/progress ───────────────────────────────────

type progressResponse struct {
	AssessmentID    string `json:"assessment_id"`
	Answered        int    `json:"answered"`
	TotalQuestions  int    `json:"total_questions"`
	MinimumRequired int    `json:"minimum_required"`
	CanShowResult   bool   `json:"can_show_result"`
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	session := sessionFromCtx(r)

	def, ok := catalog.Get(session.AssessmentID)
	if !ok {
		s.respondInternalErr(w, r, fmt.Errorf("session %s references unknown assessment %q", session.ID, session.AssessmentID))
		return
	}

	answered, err := s.store.AnsweredCount(session.AnonToken)
	if err != nil {
		s.respondInternalErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, progressResponse{
		AssessmentID:    def.ID,
		Answered:        answered,
		TotalQuestions:  len(def.Questions),
		MinimumRequired: def.MinimumRequired,
		CanShowResult:   scoring.CanShowResult(def, answered),
	})
}
