package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ollama/ollama/api"
)

func ollamaTestServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req api.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Stream != nil && *req.Stream {
			t.Error("streaming should be disabled")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.ChatResponse{
			Model:   req.Model,
			Message: api.Message{Role: "assistant", Content: reply},
			Done:    true,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOllamaAdapterSend(t *testing.T) {
	srv := ollamaTestServer(t, "hello from llama")

	a := NewOllamaAdapter(srv.URL)
	out := a.Send(context.Background(), "llama3", []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hi"},
	}, 0.7)

	if out.Failed {
		t.Fatalf("unexpected failure: %s", out.Text)
	}
	if out.Text != "hello from llama" {
		t.Errorf("Text = %q", out.Text)
	}
}

func TestOllamaAdapterEmptyReply(t *testing.T) {
	srv := ollamaTestServer(t, "   ")

	a := NewOllamaAdapter(srv.URL)
	out := a.Send(context.Background(), "llama3", []Message{{Role: RoleUser, Content: "hi"}}, 0.7)

	if out.Failed {
		t.Fatalf("empty reply must not be a failure: %s", out.Text)
	}
	if out.Text != emptyOllamaReply {
		t.Errorf("Text = %q, want %q", out.Text, emptyOllamaReply)
	}
}

func TestOllamaAdapterUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := NewOllamaAdapter(srv.URL)
	out := a.Send(context.Background(), "llama3", []Message{{Role: RoleUser, Content: "hi"}}, 0.7)

	if !out.Failed {
		t.Fatalf("want failure, got Ok(%q)", out.Text)
	}
	if !strings.Contains(out.Text, "ollama") {
		t.Errorf("failure text missing vendor: %q", out.Text)
	}
}

func TestOllamaAdapterBadBaseURL(t *testing.T) {
	// A bad URL falls back to the default endpoint instead of panicking.
	a := NewOllamaAdapter("::: not a url")
	if a.client == nil {
		t.Fatal("client not constructed")
	}
}
