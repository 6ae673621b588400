package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable wraps every failure mode of the hosted model (transport
// error, API error envelope, empty completion). Callers that only care about
// "did we get a reply" can errors.Is against this one sentinel.
var ErrUnavailable = errors.New("assistant: hosted model unavailable")

// systemPrompt frames every hosted conversation. The guidelines keep replies
// informational rather than diagnostic.
const systemPrompt = `You are a helpful AI health assistant specializing in cancer awareness and general health information.

IMPORTANT GUIDELINES:
- Always emphasize that you provide general information only, not medical diagnosis
- Encourage users to consult healthcare professionals for medical concerns
- Be supportive and empathetic
- Provide evidence-based information
- Include relevant prevention tips when appropriate
- If asked about specific symptoms, suggest professional medical evaluation
- Always include disclaimers about not replacing professional medical advice

Focus on:
- Cancer awareness and prevention
- General symptom information (not diagnosis)
- Healthy lifestyle recommendations
- When to seek medical attention
- Support and resources`

// Apology is the degraded-mode reply shown when the hosted model cannot
// answer. The wording asks the user to re-check their key because the key is
// theirs, not ours.
const Apology = "I apologize, but I'm currently unable to respond. Please ensure your API key is correct and try again. For immediate health concerns, please contact your healthcare provider."

// Client calls the OpenAI chat completions endpoint. It holds no credential:
// the API key is supplied per call by the end user, used for one request and
// discarded. Never store it and never log it.
type Client struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the given model, e.g. "gpt-4.1-2025-04-14".
func NewClient(model string) *Client {
	return &Client{
		model:   model,
		baseURL: "https://api.openai.com",
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// ─── OPENAI API SHAPES ────────────────────────────────────────────────────────

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// ─── IMPLEMENTATION ───────────────────────────────────────────────────────────

// Complete sends one user message to the hosted model and returns the reply
// text. apiKey authenticates this single request only. All failures come back
// wrapped in ErrUnavailable; error values never include the key.
func (c *Client) Complete(ctx context.Context, apiKey, message string) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   500,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions",
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: http request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %v", ErrUnavailable, err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("%w: API error %s: %s", ErrUnavailable, parsed.Error.Type, parsed.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUnavailable)
	}

	return parsed.Choices[0].Message.Content, nil
}
