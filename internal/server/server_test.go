package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/duetchat/duet/internal/ai"
	"github.com/duetchat/duet/internal/chat"
	"github.com/duetchat/duet/internal/config"
	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/logging"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

func init() {
	logging.Disable()
}

type cannedAdapter struct {
	reply string
}

func (a cannedAdapter) Vendor() string { return "fake" }
func (a cannedAdapter) Send(ctx context.Context, model string, msgs []ai.Message, temperature float64) ai.Outcome {
	return ai.Ok(a.reply)
}

func newTestServer(t *testing.T) (http.Handler, *db.Store) {
	t.Helper()

	store, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.SeedPersonas(context.Background(), db.DefaultPersonas); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := config.Default()
	cfg.Chat.SimulateTyping = false

	engine := chat.NewEngine(store, ai.NewRegistry(cannedAdapter{reply: "canned reply"}), chat.Config{
		ContextWindow:      cfg.Chat.ContextWindow,
		DefaultTemperature: cfg.Chat.DefaultTemperature,
		SimulateTyping:     false,
	})

	svcCtx := &svc.ServiceContext{Config: &cfg, DB: store, Engine: engine}
	return NewRouter(svcCtx), store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	h, store := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/chat", types.ChatRequest{
		ProviderSpec: "fake:model",
		PersonaID:    "friendly",
		Message:      "hello!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp types.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text != "canned reply" {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.ThreadID == "" {
		t.Fatal("no thread id returned")
	}

	msgs, err := store.ListMessages(context.Background(), resp.ThreadID)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Errorf("persisted %d messages, want 2", len(msgs))
	}
}

func TestChatEndpointUnknownPersona(t *testing.T) {
	h, _ := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/chat", types.ChatRequest{
		ProviderSpec: "fake:model",
		PersonaID:    "nobody",
		Message:      "hello!",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestChatEndpointValidation(t *testing.T) {
	h, _ := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/chat", types.ChatRequest{ProviderSpec: "fake:model"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPersonaRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	w := doJSON(t, h, http.MethodGet, "/api/personas/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var personas []db.Persona
	if err := json.NewDecoder(w.Body).Decode(&personas); err != nil {
		t.Fatal(err)
	}
	if len(personas) != len(db.DefaultPersonas) {
		t.Errorf("listed %d personas", len(personas))
	}

	w = doJSON(t, h, http.MethodGet, "/api/personas/nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get missing status = %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPost, "/api/personas/", types.CreatePersonaRequest{
		ID: "pirate", Name: "Flint", Bio: "an old sea captain",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPatch, "/api/personas/pirate", map[string]string{"bio": "a retired sea captain"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", w.Code, w.Body.String())
	}
	var p db.Persona
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatal(err)
	}
	if p.Bio != "a retired sea captain" || p.Name != "Flint" {
		t.Errorf("patched persona = %+v", p)
	}
}

func TestThreadRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	// Create a thread through the chat endpoint.
	w := doJSON(t, h, http.MethodPost, "/api/chat", types.ChatRequest{
		ProviderSpec: "fake:model", PersonaID: "neutral", Message: "hi", ThreadID: "t1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/api/threads/t1/messages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("messages status = %d", w.Code)
	}
	var msgs []db.Message
	if err := json.NewDecoder(w.Body).Decode(&msgs); err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Errorf("got %d messages", len(msgs))
	}

	w = doJSON(t, h, http.MethodPatch, "/api/threads/t1/summary", map[string]string{"summary": "short chat"})
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/api/threads/t1", nil)
	var th db.Thread
	if err := json.NewDecoder(w.Body).Decode(&th); err != nil {
		t.Fatal(err)
	}
	if th.Summary != "short chat" {
		t.Errorf("summary = %q", th.Summary)
	}

	w = doJSON(t, h, http.MethodDelete, "/api/threads/t1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, h, http.MethodGet, "/api/threads/t1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", w.Code)
	}
}
