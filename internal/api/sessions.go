package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/oncoscreen/oncoscreen-backend/internal/catalog"
)

// ─── POST /api/session ────────────────────────────────────────────────────────

type createSessionRequest struct {
	AssessmentID string `json:"assessment_id"`
}

type createSessionResponse struct {
	SessionID    string `json:"session_id"`
	AnonToken    string `json:"anon_token"`
	AssessmentID string `json:"assessment_id"`
}

// handleCreateSession creates an anonymous session bound to one assessment.
// Called when the user picks a quiz or checklist.
//
// The anon_token is returned to the browser and stored in sessionStorage.
// It is sent as X-Anon-Token on all subsequent session-scoped requests.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !decode(w, r, &req) {
		return
	}

	if _, ok := catalog.Get(req.AssessmentID); !ok {
		respondErr(w, http.StatusBadRequest, "unknown assessment_id")
		return
	}

	// Generate a cryptographically random token. 32 bytes → 64 hex chars.
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("generate anon token: %w", err))
		return
	}
	anonToken := hex.EncodeToString(tokenBytes)

	session := s.store.Create(req.AssessmentID, anonToken)

	s.logger.Info("session created",
		"session_id", session.ID,
		"assessment_id", session.AssessmentID,
		logField(r),
	)

	respond(w, http.StatusCreated, createSessionResponse{
		SessionID:    session.ID.String(),
		AnonToken:    anonToken,
		AssessmentID: session.AssessmentID,
	})
}

// ─── DELETE /api/session/{sessionID} ──────────────────────────────────────────

// handleDeleteSession discards the session and all of its answers. The
// frontend calls this on "start over"; the janitor handles abandonment.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session := sessionFromCtx(r)
	s.store.Delete(session.AnonToken)
	w.WriteHeader(http.StatusNoContent)
}
