package api

import (
	"net/http"
	"strings"
)

// ─── POST /api/chat ──────────────────────────────────────────────────────────

type chatRequest struct {
	Message string `json:"message"`
	// APIKey is the user's own OpenAI key. Optional: without it the built-in
	// keyword rules answer. It is forwarded for this one request and never
	// stored or logged.
	APIKey string `json:"api_key,omitempty"`
}

// handleChat answers one free-text message. The response is an
// assistant.Reply: {"reply": ..., "source": "rules"|"openai", "degraded": ...}.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decode(w, r, &req) {
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		respondErr(w, http.StatusBadRequest, "message must not be empty")
		return
	}
	if len(message) > 4000 {
		respondErr(w, http.StatusBadRequest, "message too long (max 4000 characters)")
		return
	}

	reply := s.assistant.Respond(r.Context(), strings.TrimSpace(req.APIKey), message)

	s.logger.Info("chat answered",
		"source", reply.Source,
		"degraded", reply.Degraded,
		logField(r),
	)

	respond(w, http.StatusOK, reply)
}
