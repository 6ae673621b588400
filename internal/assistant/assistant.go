package assistant

import (
	"context"
	"log/slog"
)

// Responder is the hosted-model seam. *Client satisfies it; tests substitute
// a stub.
type Responder interface {
	Complete(ctx context.Context, apiKey, message string) (string, error)
}

// Reply is one answer to the user, tagged with where it came from. Source is
// "rules" for the keyword matcher and "openai" for the hosted model. Degraded
// is set when a hosted call was attempted and failed.
type Reply struct {
	Text     string `json:"reply"`
	Source   string `json:"source"`
	Degraded bool   `json:"degraded"`
}

const (
	SourceRules  = "rules"
	SourceOpenAI = "openai"
)

// Assistant routes a message to the keyword matcher or the hosted model based
// on whether the caller supplied an API key.
type Assistant struct {
	hosted Responder
	logger *slog.Logger
}

// New returns an Assistant. hosted may be nil, in which case every message
// goes through the keyword matcher.
func New(hosted Responder, logger *slog.Logger) *Assistant {
	return &Assistant{hosted: hosted, logger: logger}
}

// Respond answers one message. With no API key (or no hosted client) the
// keyword matcher answers directly. With a key, the hosted model is tried
// first; on failure the error is logged (without the key) and a fixed apology
// is returned with Degraded set, so the caller always receives a usable reply.
func (a *Assistant) Respond(ctx context.Context, apiKey, message string) Reply {
	if apiKey == "" || a.hosted == nil {
		return Reply{Text: Match(message), Source: SourceRules}
	}

	text, err := a.hosted.Complete(ctx, apiKey, message)
	if err != nil {
		a.logger.Warn("assistant: hosted model failed, returning apology",
			"error", err,
		)
		return Reply{Text: Apology, Source: SourceOpenAI, Degraded: true}
	}
	return Reply{Text: text, Source: SourceOpenAI}
}
