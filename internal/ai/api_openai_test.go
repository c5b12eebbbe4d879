package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func openAITestServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIAdapterSend(t *testing.T) {
	srv := openAITestServer(t, http.StatusOK, map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"choices": []map[string]any{
			{"index": 0, "message": map[string]any{"role": "assistant", "content": "<think>plan</think>Hello there"}},
		},
	})

	a := NewOpenRouterAdapter("test-key", srv.URL)
	out := a.Send(context.Background(), "some/model", []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hi"},
	}, 0.7)

	if out.Failed {
		t.Fatalf("unexpected failure: %s", out.Text)
	}
	if out.Text != "Hello there" {
		t.Errorf("Text = %q, want %q (reasoning block not stripped?)", out.Text, "Hello there")
	}
}

func TestOpenAIAdapterNoChoices(t *testing.T) {
	srv := openAITestServer(t, http.StatusOK, map[string]any{
		"id":      "cmpl-2",
		"object":  "chat.completion",
		"choices": []any{},
	})

	a := NewGroqAdapter("test-key", srv.URL)
	out := a.Send(context.Background(), "m", []Message{{Role: RoleUser, Content: "hi"}}, 0.7)

	if !out.Failed {
		t.Fatalf("want failure, got Ok(%q)", out.Text)
	}
	if !strings.Contains(out.Text, "groq") {
		t.Errorf("failure text missing vendor: %q", out.Text)
	}
}

func TestOpenAIAdapterNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := NewOpenRouterAdapter("test-key", srv.URL)
	out := a.Send(context.Background(), "m", []Message{{Role: RoleUser, Content: "hi"}}, 0.7)

	if !out.Failed {
		t.Fatalf("want failure, got Ok(%q)", out.Text)
	}
}

func TestOpenAIAdapterMissingKey(t *testing.T) {
	a := NewOpenRouterAdapter("", "")
	out := a.Send(context.Background(), "m", []Message{{Role: RoleUser, Content: "hi"}}, 0.7)

	if out.Failed {
		t.Fatalf("missing key must not be a failure: %s", out.Text)
	}
	if !strings.Contains(out.Text, "OPENROUTER_API_KEY") {
		t.Errorf("diagnostic should name the env var, got %q", out.Text)
	}
}
