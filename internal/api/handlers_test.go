package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/oncoscreen/oncoscreen-backend/internal/api"
	"github.com/oncoscreen/oncoscreen-backend/internal/assistant"
	"github.com/oncoscreen/oncoscreen-backend/internal/store"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

// stubResponder stands in for the hosted chat model.
type stubResponder struct {
	reply string
	err   error
	calls int
}

func (s *stubResponder) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

type testDeps struct {
	store     *store.Store
	responder *stubResponder
	handler   http.Handler
}

func newTestServer(t *testing.T, cfgOverrides ...func(*api.Config)) *testDeps {
	t.Helper()

	st := store.New()
	responder := &stubResponder{reply: "hosted answer"}

	cfg := api.Config{
		Env:           "development",
		AllowedOrigin: "http://localhost:5173",
	}
	for _, fn := range cfgOverrides {
		fn(&cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	asst := assistant.New(responder, logger)

	return &testDeps{
		store:     st,
		responder: responder,
		handler:   api.NewServer(st, asst, cfg, logger),
	}
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v (raw: %s)", err, rr.Body.String())
	}
}

// sessionWithToken seeds a session directly in the store and returns its ID
// and token.
func sessionWithToken(deps *testDeps, assessmentID string) (uuid.UUID, string) {
	token := "test_tok_" + uuid.New().String()
	sess := deps.store.Create(assessmentID, token)
	return sess.ID, token
}

func tokenHeader(token string) map[string]string {
	return map[string]string{"X-Anon-Token": token}
}

// ─── GET /healthz ─────────────────────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodGet, "/healthz", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// ─── GET /api/assessments ─────────────────────────────────────────────────────

func TestListAssessments(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodGet, "/api/assessments", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Assessments []struct {
			ID              string `json:"id"`
			DisplayName     string `json:"display_name"`
			Scheme          string `json:"scheme"`
			QuestionCount   int    `json:"question_count"`
			MinimumRequired int    `json:"minimum_required"`
		} `json:"assessments"`
	}
	decodeJSON(t, rr, &resp)

	if len(resp.Assessments) != 22 {
		t.Fatalf("expected 22 assessments, got %d", len(resp.Assessments))
	}
	for _, a := range resp.Assessments {
		if a.ID == "" || a.DisplayName == "" || a.QuestionCount == 0 {
			t.Errorf("incomplete summary: %+v", a)
		}
	}
}

func TestGetAssessment(t *testing.T) {
	deps := newTestServer(t)

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/assessments/risk_general", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var def struct {
		ID        string `json:"id"`
		Questions []struct {
			ID      string `json:"id"`
			Prompt  string `json:"prompt"`
			Options []struct {
				Weight int    `json:"weight"`
				Label  string `json:"label"`
			} `json:"options"`
		} `json:"questions"`
	}
	decodeJSON(t, rr, &def)
	if def.ID != "risk_general" || len(def.Questions) != 8 {
		t.Errorf("got id=%q questions=%d", def.ID, len(def.Questions))
	}
	if len(def.Questions[0].Options) == 0 {
		t.Error("weighted questions should ship their options")
	}

	rr = doRequest(t, deps.handler, http.MethodGet, "/api/assessments/nope", nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown assessment, got %d", rr.Code)
	}
}

// ─── GET /api/cancer-info ─────────────────────────────────────────────────────

func TestCancerInfo(t *testing.T) {
	deps := newTestServer(t)

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/cancer-info", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var list struct {
		CancerTypes []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"cancer_types"`
	}
	decodeJSON(t, rr, &list)
	if len(list.CancerTypes) != 10 {
		t.Fatalf("expected 10 cancer types, got %d", len(list.CancerTypes))
	}

	rr = doRequest(t, deps.handler, http.MethodGet, "/api/cancer-info/breast", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var info struct {
		Name     string   `json:"name"`
		Symptoms []string `json:"symptoms"`
	}
	decodeJSON(t, rr, &info)
	if info.Name != "Breast Cancer" || len(info.Symptoms) == 0 {
		t.Errorf("got %+v", info)
	}

	rr = doRequest(t, deps.handler, http.MethodGet, "/api/cancer-info/brain", nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

// ─── POST /api/session ────────────────────────────────────────────────────────

func TestCreateSession_ReturnsSessionIDAndToken(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodPost, "/api/session",
		map[string]string{"assessment_id": "risk_general"}, nil)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		SessionID    string `json:"session_id"`
		AnonToken    string `json:"anon_token"`
		AssessmentID string `json:"assessment_id"`
	}
	decodeJSON(t, rr, &resp)

	if resp.SessionID == "" {
		t.Error("session_id should not be empty")
	}
	if len(resp.AnonToken) != 64 {
		t.Errorf("anon_token should be 64 hex chars, got %d", len(resp.AnonToken))
	}
	if resp.AssessmentID != "risk_general" {
		t.Errorf("assessment_id = %q", resp.AssessmentID)
	}
}

func TestCreateSession_UnknownAssessmentReturns400(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodPost, "/api/session",
		map[string]string{"assessment_id": "risk_unknown"}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestCreateSession_InvalidJSONReturns400(t *testing.T) {
	deps := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/session", bytes.NewBufferString(`{bad json`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	deps.handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreateSession_UnknownFieldsReturns400(t *testing.T) {
	// DisallowUnknownFields is set on the decoder.
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodPost, "/api/session",
		map[string]string{"assessment_id": "risk_general", "unknown_field": "value"}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d: %s", rr.Code, rr.Body.String())
	}
}

// ─── AUTH ─────────────────────────────────────────────────────────────────────

func TestSessionRoutes_MissingTokenReturns401(t *testing.T) {
	deps := newTestServer(t)
	id, _ := sessionWithToken(deps, "risk_general")

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/progress", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestSessionRoutes_InvalidTokenReturns401(t *testing.T) {
	deps := newTestServer(t)
	id, _ := sessionWithToken(deps, "risk_general")

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/progress",
		nil, tokenHeader("totally_fake"))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestSessionRoutes_WrongSessionIDReturns403(t *testing.T) {
	deps := newTestServer(t)
	_, token := sessionWithToken(deps, "risk_general")
	other, _ := sessionWithToken(deps, "risk_breast")

	// Valid token, someone else's session ID in the URL.
	rr := doRequest(t, deps.handler, http.MethodGet, "/api/session/"+other.String()+"/progress",
		nil, tokenHeader(token))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

// ─── PUT /api/session/{sessionID}/answers ────────────────────────────────────

func TestUpsertAnswers_Weighted(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "risk_general")

	w3, w5 := 3, 5
	rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": []map[string]any{
			{"question_id": "age", "weight": w3},
			{"question_id": "smoking", "weight": w5},
			{"question_id": "not_a_question", "weight": w3},
		}}, tokenHeader(token))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Accepted int `json:"accepted"`
		Ignored  int `json:"ignored"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Accepted != 2 || resp.Ignored != 1 {
		t.Errorf("accepted=%d ignored=%d, want 2/1", resp.Accepted, resp.Ignored)
	}

	answers, err := deps.store.WeightedAnswers(token)
	if err != nil {
		t.Fatal(err)
	}
	if answers["age"] != 3 || answers["smoking"] != 5 {
		t.Errorf("stored answers = %v", answers)
	}
}

func TestUpsertAnswers_WeightedRequiresWeight(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "risk_general")

	rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": []map[string]any{
			{"question_id": "age", "yes": true},
		}}, tokenHeader(token))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for yes answer on weighted quiz, got %d", rr.Code)
	}
}

func TestUpsertAnswers_BooleanRequiresYes(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "symptoms_lung")

	w := 3
	rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": []map[string]any{
			{"question_id": "lung_1", "weight": w},
		}}, tokenHeader(token))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weight answer on checklist, got %d", rr.Code)
	}
}

func TestUpsertAnswers_EmptyBatchReturns400(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "risk_general")

	rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": []map[string]any{}}, tokenHeader(token))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestUpsertAnswers_OversizedBatchReturns400(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "symptoms_general")

	batch := make([]map[string]any, 101)
	for i := range batch {
		batch[i] = map[string]any{"question_id": "general_1", "yes": true}
	}
	rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": batch}, tokenHeader(token))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestUpsertAnswers_NegativeWeightReturns400(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "risk_general")

	neg := -1
	rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": []map[string]any{
			{"question_id": "age", "weight": neg},
		}}, tokenHeader(token))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

// ─── GET /api/session/{sessionID}/result ─────────────────────────────────────

func TestGetResult_Weighted(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "risk_general")

	// Sum 14 over 8 questions → 14/40 = 35% → Moderate.
	answers := []map[string]any{
		{"question_id": "age", "weight": 5},
		{"question_id": "family_history", "weight": 3},
		{"question_id": "smoking", "weight": 2},
		{"question_id": "alcohol", "weight": 1},
		{"question_id": "diet", "weight": 1},
		{"question_id": "exercise", "weight": 1},
		{"question_id": "weight", "weight": 1},
	}
	rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": answers}, tokenHeader(token))
	if rr.Code != http.StatusOK {
		t.Fatalf("put answers: %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/result",
		nil, tokenHeader(token))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var result struct {
		AssessmentID  string `json:"assessment_id"`
		Level         string `json:"level"`
		Score         int    `json:"score"`
		TotalAnswered int    `json:"total_answered"`
		Narrative     string `json:"narrative"`
	}
	decodeJSON(t, rr, &result)
	if result.Score != 35 || result.Level != "Moderate" {
		t.Errorf("got score=%d level=%q, want 35/Moderate", result.Score, result.Level)
	}
	if result.TotalAnswered != 7 {
		t.Errorf("TotalAnswered = %d", result.TotalAnswered)
	}
	if result.Narrative == "" {
		t.Error("narrative should not be empty")
	}
}

func TestGetResult_WeightedEmptySessionIsLow(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "risk_lung")

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/result",
		nil, tokenHeader(token))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var result struct {
		Score int    `json:"score"`
		Level string `json:"level"`
	}
	decodeJSON(t, rr, &result)
	if result.Score != 0 || result.Level != "Low" {
		t.Errorf("got score=%d level=%q, want 0/Low", result.Score, result.Level)
	}
}

func TestGetResult_BooleanGate(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "symptoms_lung")

	put := func(n int, val bool) {
		batch := make([]map[string]any, 0, n)
		for i := 1; i <= n; i++ {
			batch = append(batch, map[string]any{
				"question_id": "lung_" + string(rune('0'+i)),
				"yes":         val,
			})
		}
		rr := doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
			map[string]any{"answers": batch}, tokenHeader(token))
		if rr.Code != http.StatusOK {
			t.Fatalf("put answers: %d: %s", rr.Code, rr.Body.String())
		}
	}

	// Four answers: below the gate of five.
	put(4, true)
	rr := doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/result",
		nil, tokenHeader(token))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 below the gate, got %d: %s", rr.Code, rr.Body.String())
	}
	var conflict struct {
		Error           string `json:"error"`
		Answered        int    `json:"answered"`
		MinimumRequired int    `json:"minimum_required"`
	}
	decodeJSON(t, rr, &conflict)
	if conflict.Answered != 4 || conflict.MinimumRequired != 5 {
		t.Errorf("conflict body: %+v", conflict)
	}

	// Fifth answer clears the gate; five positives → High.
	put(5, true)
	rr = doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/result",
		nil, tokenHeader(token))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 at the gate, got %d: %s", rr.Code, rr.Body.String())
	}
	var result struct {
		Level         string `json:"level"`
		PositiveCount int    `json:"positive_count"`
		Narrative     string `json:"narrative"`
	}
	decodeJSON(t, rr, &result)
	if result.Level != "High" || result.PositiveCount != 5 {
		t.Errorf("got level=%q positives=%d, want High/5", result.Level, result.PositiveCount)
	}
	if !strings.Contains(result.Narrative, "Lung Cancer") {
		t.Errorf("topic narrative should name the checklist: %q", result.Narrative)
	}
}

// ─── GET /api/session/{sessionID}/progress ───────────────────────────────────

func TestGetProgress(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "symptoms_lung")

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/progress",
		nil, tokenHeader(token))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var progress struct {
		AssessmentID    string `json:"assessment_id"`
		Answered        int    `json:"answered"`
		TotalQuestions  int    `json:"total_questions"`
		MinimumRequired int    `json:"minimum_required"`
		CanShowResult   bool   `json:"can_show_result"`
	}
	decodeJSON(t, rr, &progress)
	if progress.Answered != 0 || progress.TotalQuestions != 10 || progress.MinimumRequired != 5 {
		t.Errorf("progress: %+v", progress)
	}
	if progress.CanShowResult {
		t.Error("empty checklist session should not be able to show a result")
	}

	// Answer five questions and check the flag flips.
	batch := []map[string]any{
		{"question_id": "lung_1", "yes": true},
		{"question_id": "lung_2", "yes": false},
		{"question_id": "lung_3", "yes": false},
		{"question_id": "lung_4", "yes": false},
		{"question_id": "lung_5", "yes": false},
	}
	doRequest(t, deps.handler, http.MethodPut, "/api/session/"+id.String()+"/answers",
		map[string]any{"answers": batch}, tokenHeader(token))

	rr = doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/progress",
		nil, tokenHeader(token))
	decodeJSON(t, rr, &progress)
	if progress.Answered != 5 || !progress.CanShowResult {
		t.Errorf("after five answers: %+v", progress)
	}
}

// ─── DELETE /api/session/{sessionID} ─────────────────────────────────────────

func TestDeleteSession(t *testing.T) {
	deps := newTestServer(t)
	id, token := sessionWithToken(deps, "risk_general")

	rr := doRequest(t, deps.handler, http.MethodDelete, "/api/session/"+id.String(),
		nil, tokenHeader(token))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rr.Code, rr.Body.String())
	}

	// The token is now dead.
	rr = doRequest(t, deps.handler, http.MethodGet, "/api/session/"+id.String()+"/progress",
		nil, tokenHeader(token))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after delete, got %d", rr.Code)
	}
}

// ─── POST /api/chat ──────────────────────────────────────────────────────────

func TestChat_RulesWithoutKey(t *testing.T) {
	deps := newTestServer(t)

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/chat",
		map[string]string{"message": "what are signs of lung cancer"}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var reply struct {
		Reply    string `json:"reply"`
		Source   string `json:"source"`
		Degraded bool   `json:"degraded"`
	}
	decodeJSON(t, rr, &reply)
	if reply.Source != "rules" || reply.Degraded {
		t.Errorf("got %+v", reply)
	}
	if !strings.Contains(reply.Reply, "persistent cough") {
		t.Errorf("unexpected rules reply: %q", reply.Reply)
	}
	if deps.responder.calls != 0 {
		t.Error("hosted model should not be called without a key")
	}
}

func TestChat_HostedWithKey(t *testing.T) {
	deps := newTestServer(t)

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/chat",
		map[string]string{"message": "hello", "api_key": "sk-user"}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var reply struct {
		Reply  string `json:"reply"`
		Source string `json:"source"`
	}
	decodeJSON(t, rr, &reply)
	if reply.Source != "openai" || reply.Reply != "hosted answer" {
		t.Errorf("got %+v", reply)
	}
	if deps.responder.calls != 1 {
		t.Errorf("responder calls = %d", deps.responder.calls)
	}
}

func TestChat_HostedFailureDegrades(t *testing.T) {
	deps := newTestServer(t)
	deps.responder.err = errors.New("upstream down")

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/chat",
		map[string]string{"message": "hello", "api_key": "sk-user"}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("degraded chat should still be 200, got %d", rr.Code)
	}

	var reply struct {
		Reply    string `json:"reply"`
		Degraded bool   `json:"degraded"`
	}
	decodeJSON(t, rr, &reply)
	if !reply.Degraded {
		t.Error("expected degraded reply")
	}
	if reply.Reply != assistant.Apology {
		t.Errorf("reply = %q", reply.Reply)
	}
}

func TestChat_EmptyMessageReturns400(t *testing.T) {
	deps := newTestServer(t)
	for _, msg := range []string{"", "   "} {
		rr := doRequest(t, deps.handler, http.MethodPost, "/api/chat",
			map[string]string{"message": msg}, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("message=%q: expected 400, got %d", msg, rr.Code)
		}
	}
}

// ─── CORS ─────────────────────────────────────────────────────────────────────

func TestCORSPreflight(t *testing.T) {
	deps := newTestServer(t)

	rr := doRequest(t, deps.handler, http.MethodOptions, "/api/assessments", nil,
		map[string]string{"Origin": "http://localhost:5173"})
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
	if !strings.Contains(rr.Header().Get("Access-Control-Allow-Headers"), "X-Anon-Token") {
		t.Errorf("Allow-Headers = %q", rr.Header().Get("Access-Control-Allow-Headers"))
	}
}

func TestCORSProductionUsesConfiguredOrigin(t *testing.T) {
	deps := newTestServer(t, func(c *api.Config) {
		c.Env = "production"
		c.AllowedOrigin = "https://oncoscreen.app"
	})

	rr := doRequest(t, deps.handler, http.MethodGet, "/healthz", nil,
		map[string]string{"Origin": "https://evil.example"})
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://oncoscreen.app" {
		t.Errorf("Allow-Origin = %q, want the configured origin", got)
	}
}
