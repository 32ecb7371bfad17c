package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/marisa/hiring-wizard/internal/copilot"
	"github.com/marisa/hiring-wizard/internal/llm"
	"github.com/marisa/hiring-wizard/internal/store"
	"github.com/marisa/hiring-wizard/internal/types"
)

// stubClient returns scripted responses in order.
type stubClient struct {
	responses []stubResponse
}

type stubResponse struct {
	text string
	err  error
}

func (c *stubClient) Complete(_ context.Context, _ llm.Request) (string, error) {
	if len(c.responses) == 0 {
		return "", &llm.GatewayError{Message: "no scripted response"}
	}
	next := c.responses[0]
	c.responses = c.responses[1:]
	return next.text, next.err
}

func (c *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }

func (c *stubClient) Close() error { return nil }

// newTestServer creates a server whose copilot runs against a scripted
// gateway and the built-in sample candidates.
func newTestServer(t *testing.T, responses ...stubResponse) *Server {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "missing.csv"), zap.NewNop())
	svc := copilot.New(&stubClient{responses: responses}, st, zap.NewNop(), 200)
	return New(Config{Port: 8080}, svc, zap.NewNop())
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", resp["status"])
	}
}

// TestMatchEndpoint tests /match with a well-formed model response
func TestMatchEndpoint(t *testing.T) {
	s := newTestServer(t, stubResponse{text: "Score: 85\nSkills: Go, Python\nExplanation: Strong fit."})

	body := `{"query": "senior Go engineer", "candidate_profile": "Go developer, 6 years"}`
	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleMatch(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp types.MatchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Score != 85 {
		t.Errorf("expected score 85, got %d", resp.Score)
	}
	if resp.Skills != "Go, Python" {
		t.Errorf("unexpected skills: %q", resp.Skills)
	}
	if resp.Explanation != "Strong fit." {
		t.Errorf("unexpected explanation: %q", resp.Explanation)
	}
}

// TestMatchEndpoint_MissingQuery tests /match with a missing required field
func TestMatchEndpoint_MissingQuery(t *testing.T) {
	s := newTestServer(t)

	body := `{"candidate_profile": "Go developer"}`
	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleMatch(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected error message in response")
	}
}

// TestMatchEndpoint_InvalidJSON tests /match with a malformed body
func TestMatchEndpoint_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewBufferString(`{invalid json}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleMatch(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestMatchEndpoint_GatewayFailure tests that an unreachable model still
// returns a well-formed 200 response
func TestMatchEndpoint_GatewayFailure(t *testing.T) {
	s := newTestServer(t, stubResponse{err: &llm.GatewayError{Message: "model unreachable"}})

	body := `{"query": "senior Go engineer"}`
	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleMatch(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp types.MatchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Score != 0 || resp.Skills != "" {
		t.Errorf("expected zeroed result, got score=%d skills=%q", resp.Score, resp.Skills)
	}
	if !strings.Contains(resp.Explanation, "model unreachable") {
		t.Errorf("expected failure explanation, got %q", resp.Explanation)
	}
}

// TestSkillsEndpoint tests /skills
func TestSkillsEndpoint(t *testing.T) {
	s := newTestServer(t, stubResponse{text: "Go, Kubernetes"})

	req := httptest.NewRequest(http.MethodGet, "/skills?resume=Go+developer", nil)
	w := httptest.NewRecorder()

	s.handleSkills(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp types.SkillsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Skills != "Go, Kubernetes" {
		t.Errorf("unexpected skills: %q", resp.Skills)
	}
}

// TestSkillsEndpoint_MissingResume tests /skills without the resume parameter
func TestSkillsEndpoint_MissingResume(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/skills", nil)
	w := httptest.NewRecorder()

	s.handleSkills(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestSkillsEndpoint_GatewayFailure tests that /skills degrades to an empty
// skills string
func TestSkillsEndpoint_GatewayFailure(t *testing.T) {
	s := newTestServer(t, stubResponse{err: &llm.GatewayError{Message: "timeout"}})

	req := httptest.NewRequest(http.MethodGet, "/skills?resume=Go+developer", nil)
	w := httptest.NewRecorder()

	s.handleSkills(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"skills":""`) {
		t.Errorf("expected empty skills, got %s", w.Body.String())
	}
}

// TestCandidatesEndpoint tests /candidates against the sample dataset
func TestCandidatesEndpoint(t *testing.T) {
	s := newTestServer(t,
		stubResponse{text: "Python, React"},
		stubResponse{text: "Java, Spring Boot"},
		stubResponse{text: "JavaScript, Node.js"},
	)

	req := httptest.NewRequest(http.MethodGet, "/candidates", nil)
	w := httptest.NewRecorder()

	s.handleCandidates(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp []types.ScoredCandidate
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(resp))
	}
	if resp[0].Name != "John Smith" {
		t.Errorf("unexpected first candidate: %q", resp[0].Name)
	}
	if resp[0].Skills != "Python, React" {
		t.Errorf("unexpected skills: %q", resp[0].Skills)
	}
	if resp[0].Score != 0 || resp[0].Explanation != "" {
		t.Errorf("expected unscored candidate, got score=%d explanation=%q", resp[0].Score, resp[0].Explanation)
	}
}

// TestLocationEndpoint tests /location for both a match and a null result
func TestLocationEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		wantLocation string
		wantNull     bool
	}{
		{name: "known country", response: "United Kingdom", wantLocation: "United Kingdom"},
		{name: "no location in query", response: "null", wantNull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, stubResponse{text: tt.response})

			req := httptest.NewRequest(http.MethodGet, "/location?query=engineers+in+Europe", nil)
			w := httptest.NewRecorder()

			s.handleLocation(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var resp types.LocationResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if tt.wantNull {
				if resp.Location != nil {
					t.Errorf("expected null location, got %q", *resp.Location)
				}
				if !strings.Contains(w.Body.String(), `"location":null`) {
					t.Errorf("expected explicit null in body, got %s", w.Body.String())
				}
				return
			}
			if resp.Location == nil || *resp.Location != tt.wantLocation {
				t.Errorf("expected location %q, got %v", tt.wantLocation, resp.Location)
			}
		})
	}
}

// TestLocationEndpoint_MissingQuery tests /location without the query parameter
func TestLocationEndpoint_MissingQuery(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/location", nil)
	w := httptest.NewRecorder()

	s.handleLocation(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestExperienceEndpoint tests that /experience serializes years as a string
func TestExperienceEndpoint(t *testing.T) {
	s := newTestServer(t, stubResponse{text: "7"})

	req := httptest.NewRequest(http.MethodGet, "/experience?resume=seven+years+of+Go", nil)
	w := httptest.NewRecorder()

	s.handleExperience(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"experience":"7"`) {
		t.Errorf("expected experience as string, got %s", w.Body.String())
	}
}

// TestExperienceEndpoint_GatewayFailure tests that /experience degrades to "0"
func TestExperienceEndpoint_GatewayFailure(t *testing.T) {
	s := newTestServer(t, stubResponse{err: &llm.GatewayError{Message: "timeout"}})

	req := httptest.NewRequest(http.MethodGet, "/experience?resume=seven+years", nil)
	w := httptest.NewRecorder()

	s.handleExperience(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"experience":"0"`) {
		t.Errorf("expected zero experience, got %s", w.Body.String())
	}
}

// TestSearchEndpoint tests /search end to end against the sample dataset
func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t,
		stubResponse{text: "null"},
		stubResponse{text: "Score: 40\nSkills: Python\nExplanation: ok"},
		stubResponse{text: "Score: 90\nSkills: Java\nExplanation: ok"},
		stubResponse{text: "Score: 60\nSkills: JavaScript\nExplanation: ok"},
	)

	body := `{"query": "software engineers"}`
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleSearch(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp []types.ScoredCandidate
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(resp))
	}
	if resp[0].Name != "Maria Garcia" || resp[0].Score != 90 {
		t.Errorf("expected Maria Garcia ranked first with score 90, got %s/%d", resp[0].Name, resp[0].Score)
	}
}

// TestSearchEndpoint_MissingQuery tests /search with an empty body
func TestSearchEndpoint_MissingQuery(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleSearch(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func outreachBody() string {
	return `{
		"candidateEmail": "john.smith@email.com",
		"subject": "Exciting opportunity",
		"message": "We have a role for you.",
		"candidateName": "John Smith",
		"candidateResume": "Experienced software engineer."
	}`
}

// TestOutreachEndpoint tests /outreach
func TestOutreachEndpoint(t *testing.T) {
	s := newTestServer(t,
		stubResponse{text: "Python, React"},
		stubResponse{text: "5"},
		stubResponse{text: "Hi John, I came across your profile..."},
	)

	req := httptest.NewRequest(http.MethodPost, "/outreach", bytes.NewBufferString(outreachBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleOutreach(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp types.OutreachResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.GeneratedMessage != "Hi John, I came across your profile..." {
		t.Errorf("unexpected message: %q", resp.GeneratedMessage)
	}
}

// TestOutreachEndpoint_MissingFields tests /outreach validation
func TestOutreachEndpoint_MissingFields(t *testing.T) {
	s := newTestServer(t)

	body := `{"candidateEmail": "john.smith@email.com"}`
	req := httptest.NewRequest(http.MethodPost, "/outreach", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleOutreach(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestOutreachEndpoint_DraftFailure tests that a failed drafting call maps
// to a 500 error response
func TestOutreachEndpoint_DraftFailure(t *testing.T) {
	s := newTestServer(t,
		stubResponse{text: "Python"},
		stubResponse{text: "5"},
		stubResponse{err: &llm.GatewayError{Message: "model unreachable"}},
	)

	req := httptest.NewRequest(http.MethodPost, "/outreach", bytes.NewBufferString(outreachBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleOutreach(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !strings.Contains(resp["error"], "model unreachable") {
		t.Errorf("expected gateway error message, got %q", resp["error"])
	}
}

// TestRouting_MethodNotAllowed tests method enforcement through the full
// middleware stack
func TestRouting_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/match", nil)
	w := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

// TestRequestID_PreservesCallerID tests that a caller-supplied request ID
// is echoed back
func TestRequestID_PreservesCallerID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-id-123")
	w := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "caller-id-123" {
		t.Errorf("expected caller request ID echoed, got %q", got)
	}
}

// TestCORSHeaders tests CORS headers and the OPTIONS short-circuit
func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/match", nil)
	w := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for OPTIONS, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected Access-Control-Allow-Origin header")
	}
}

// TestRecovery tests that a panicking handler yields a 500 response
func TestRecovery(t *testing.T) {
	s := newTestServer(t)

	h := s.withRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Internal server error") {
		t.Errorf("expected uniform error body, got %s", w.Body.String())
	}
}

// TestValidationErrorStatus tests the error-to-status mapping
func TestValidationErrorStatus(t *testing.T) {
	if got := HTTPStatus(&ErrValidation{Field: "query", Message: "required"}); got != http.StatusBadRequest {
		t.Errorf("expected 400 for validation error, got %d", got)
	}
	if got := HTTPStatus(&llm.GatewayError{Message: "down"}); got != http.StatusInternalServerError {
		t.Errorf("expected 500 for gateway error, got %d", got)
	}
}
