package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newTestClient(t *testing.T, baseURL string) Client {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", baseURL)
	t.Setenv("OPENAI_MODEL", "test-model")
	t.Setenv("OPENAI_MAX_RETRIES", "2")
	c, err := NewClient(testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func responsesBody(text string) map[string]any {
	return map[string]any{
		"output": []map[string]any{
			{
				"type": "message",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		},
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewClient(testLogger()); err == nil {
		t.Fatal("expected error without OPENAI_API_KEY")
	}
}

func TestGenerateTextSendsInstructionsAndExtractsText(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq responsesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(responsesBody(`{"answer": 42}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	text, err := c.GenerateText(context.Background(), "be terse", "write the brief")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != `{"answer": 42}` {
		t.Fatalf("text = %q", text)
	}
	if gotPath != "/v1/responses" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth = %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Fatalf("model = %q", gotReq.Model)
	}
	if len(gotReq.Input) != 2 || gotReq.Input[0].Role != "system" || gotReq.Input[1].Role != "user" {
		t.Fatalf("input roles wrong: %+v", gotReq.Input)
	}
	if gotReq.Input[0].Content != "be terse" || gotReq.Input[1].Content != "write the brief" {
		t.Fatalf("instructions not carried: %+v", gotReq.Input)
	}
}

func TestGenerateTextRetriesOn429(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(responsesBody("ok"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	text, err := c.GenerateText(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "ok" {
		t.Fatalf("text = %q", text)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestGenerateTextDoesNotRetryOn400(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "bad request"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on 400")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1 (no retry on 4xx)", got)
	}
}

func TestGenerateTextExhaustsRetriesOn503(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("calls = %d, want 3 (initial + 2 retries)", got)
	}
}

func TestGenerateTextRejectsRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"output": []any{}, "refusal": "cannot comply"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on refusal")
	}
}

func TestGenerateTextRejectsEmptyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"output": []any{}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on empty output")
	}
}
