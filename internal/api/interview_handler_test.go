package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coding-ninjas-ai/backend/internal/api"
	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
	"github.com/coding-ninjas-ai/backend/internal/evaluator"
	"github.com/coding-ninjas-ai/backend/internal/questions"
	"github.com/coding-ninjas-ai/backend/internal/service"
	"github.com/coding-ninjas-ai/backend/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	qs := questions.FromSlice([]interview.Question{
		{Text: "What does VLOOKUP do?", ExpectedAnswer: "Vertical lookup"},
		{Text: "What is a pivot table?", ExpectedAnswer: "Summarization tool"},
	})
	st := store.NewMemoryStore(0)
	t.Cleanup(func() { st.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	eval := &evaluator.Static{Result: interview.Evaluation{
		Score:           85,
		Feedback:        "ok",
		RelatedConcepts: []string{"INDEX"},
	}}
	svc := service.NewInterviewService(qs, st, eval, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(svc, logger))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

func startInterview(t *testing.T, server *httptest.Server) api.StartInterviewResponse {
	t.Helper()
	resp := postJSON(t, server.URL+"/start-interview", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start-interview returned %d", resp.StatusCode)
	}
	return decodeBody[api.StartInterviewResponse](t, resp)
}

func TestStartInterview(t *testing.T) {
	server := newTestServer(t)

	res := startInterview(t, server)

	if res.SessionID == "" {
		t.Error("expected a session_id")
	}
	if res.Question != "What does VLOOKUP do?" {
		t.Errorf("expected first question, got %q", res.Question)
	}
	if res.TotalQuestions != 2 {
		t.Errorf("expected 2 total questions, got %d", res.TotalQuestions)
	}
}

func TestAnswer_FullFlow(t *testing.T) {
	server := newTestServer(t)
	started := startInterview(t, server)

	resp := postJSON(t, server.URL+"/answer", api.AnswerRequest{
		SessionID: started.SessionID,
		Answer:    "It searches a column and returns a matching value.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("answer returned %d", resp.StatusCode)
	}
	first := decodeBody[api.AnswerResponse](t, resp)

	if first.Evaluation.Score != 85 {
		t.Errorf("expected score 85, got %v", first.Evaluation.Score)
	}
	if first.Done {
		t.Error("expected interview to continue after first answer")
	}
	if first.NextQuestion != "What is a pivot table?" {
		t.Errorf("expected second question, got %q", first.NextQuestion)
	}

	resp = postJSON(t, server.URL+"/answer", api.AnswerRequest{
		SessionID: started.SessionID,
		Answer:    "It groups and aggregates data for analysis.",
	})
	last := decodeBody[api.AnswerResponse](t, resp)

	if !last.Done {
		t.Error("expected done=true after the last answer")
	}
	if last.NextQuestion != "" {
		t.Errorf("expected no next question, got %q", last.NextQuestion)
	}
}

func TestAnswer_UnknownSession(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/answer", api.AnswerRequest{
		SessionID: "no-such-session",
		Answer:    "an answer",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAnswer_AfterCompletion(t *testing.T) {
	server := newTestServer(t)
	started := startInterview(t, server)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, server.URL+"/answer", api.AnswerRequest{
			SessionID: started.SessionID,
			Answer:    "a long enough answer about spreadsheets",
		})
		resp.Body.Close()
	}

	resp := postJSON(t, server.URL+"/answer", api.AnswerRequest{
		SessionID: started.SessionID,
		Answer:    "one answer too many",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", resp.StatusCode)
	}
}

func TestAnswer_Validation(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing session_id", `{"answer": "x"}`},
		{"missing answer", `{"session_id": "abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/answer", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	server := newTestServer(t)
	started := startInterview(t, server)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, server.URL+"/answer", api.AnswerRequest{
			SessionID: started.SessionID,
			Answer:    "a long enough answer about spreadsheets",
		})
		resp.Body.Close()
	}

	resp, err := http.Get(server.URL + "/summary/" + started.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary returned %d", resp.StatusCode)
	}
	summary := decodeBody[api.SummaryResponse](t, resp)

	if len(summary.Answers) != 2 || len(summary.Evaluations) != 2 {
		t.Errorf("expected 2 answers and evaluations, got %d/%d",
			len(summary.Answers), len(summary.Evaluations))
	}
	if summary.FinalScore != 85.0 {
		t.Errorf("expected final score 85.0, got %v", summary.FinalScore)
	}
	if !strings.Contains(summary.OverallFeedback, "Final Score: 85/100 - Excellent") {
		t.Errorf("unexpected overall feedback:\n%s", summary.OverallFeedback)
	}
}

func TestSummary_UnknownSession(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/summary/no-such-session")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestQuestionCount(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/questions/count")
	if err != nil {
		t.Fatal(err)
	}
	count := decodeBody[api.QuestionCountResponse](t, resp)

	if count.Count != 2 {
		t.Errorf("expected 2 questions, got %d", count.Count)
	}
}
