package api

import (
	"fmt"
	"net/http"

	"github.com/oncoscreen/oncoscreen-backend/internal/catalog"
)

// ─── PUT /api/session/{sessionID}/answers ────────────────────────────────────
//
// Accepts a batch of answers and merges them into the session. The browser
// sends the full current answer set on every navigation (or a partial batch
// on debounce). Merging by question ID means it is safe to replay the same
// payload multiple times.

type answerInput struct {
	QuestionID string `json:"question_id"`
	// Exactly one of the following is read, depending on the assessment's
	// scheme: Weight for weighted quizzes, Yes for symptom checklists.
	Weight *int  `json:"weight,omitempty"`
	Yes    *bool `json:"yes,omitempty"`
}

type upsertAnswersRequest struct {
	Answers []answerInput `json:"answers"`
}

type upsertAnswersResponse struct {
	Accepted int `json:"accepted"`
	Ignored  int `json:"ignored"`
}

// handleUpsertAnswers merges a batch of answers into the session. Answers
// referencing question IDs the assessment doesn't contain are counted in
// "ignored" rather than failing the batch, so a stale frontend keeps working
// after a catalog change. Answers missing the value field for the
// assessment's scheme are a 400: that is a malformed request, not drift.
func (s *Server) handleUpsertAnswers(w http.ResponseWriter, r *http.Request) {
	session := sessionFromCtx(r)

	def, ok := catalog.Get(session.AssessmentID)
	if !ok {
		s.respondInternalErr(w, r, fmt.Errorf("session %s references unknown assessment %q", session.ID, session.AssessmentID))
		return
	}

	var req upsertAnswersRequest
	if !decode(w, r, &req) {
		return
	}

	if len(req.Answers) == 0 {
		respondErr(w, http.StatusBadRequest, "answers must not be empty")
		return
	}

	if len(req.Answers) > 100 {
		respondErr(w, http.StatusBadRequest, "too many answers in a single request (max 100)")
		return
	}

	known := make(map[string]bool, len(def.Questions))
	for _, q := range def.Questions {
		known[q.ID] = true
	}

	weighted := make(map[string]int)
	boolean := make(map[string]bool)
	ignored := 0

	for _, a := range req.Answers {
		if a.QuestionID == "" {
			respondErr(w, http.StatusBadRequest, "each answer must have a non-empty question_id")
			return
		}

		switch def.Scheme {
		case catalog.SchemeWeightedPercentage:
			if a.Weight == nil {
				respondErr(w, http.StatusBadRequest, fmt.Sprintf("answer %q: weight is required for this assessment", a.QuestionID))
				return
			}
			if *a.Weight < 0 {
				respondErr(w, http.StatusBadRequest, fmt.Sprintf("answer %q: weight must not be negative", a.QuestionID))
				return
			}
			if !known[a.QuestionID] {
				ignored++
				continue
			}
			weighted[a.QuestionID] = *a.Weight

		case catalog.SchemeBooleanThreshold:
			if a.Yes == nil {
				respondErr(w, http.StatusBadRequest, fmt.Sprintf("answer %q: yes is required for this assessment", a.QuestionID))
				return
			}
			if !known[a.QuestionID] {
				ignored++
				continue
			}
			boolean[a.QuestionID] = *a.Yes
		}
	}

	if len(weighted) > 0 {
		if err := s.store.MergeWeighted(session.AnonToken, weighted); err != nil {
			s.respondInternalErr(w, r, fmt.Errorf("merge weighted answers: %w", err))
			return
		}
	}
	if len(boolean) > 0 {
		if err := s.store.MergeBoolean(session.AnonToken, boolean); err != nil {
			s.respondInternalErr(w, r, fmt.Errorf("merge boolean answers: %w", err))
			return
		}
	}

	respond(w, http.StatusOK, upsertAnswersResponse{
		Accepted: len(weighted) + len(boolean),
		Ignored:  ignored,
	})
}
