package ai

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// ollamaTimeout is deliberately longer than the cloud timeouts: a local
// model may need to cold-start before it answers.
const ollamaTimeout = 120 * time.Second

const defaultOllamaURL = "http://127.0.0.1:11434"

// emptyOllamaReply is returned when the daemon answers with no content.
const emptyOllamaReply = "(ollama returned an empty response)"

// OllamaAdapter talks to a local Ollama daemon. No authentication, roles
// pass through unmapped, streaming disabled.
type OllamaAdapter struct {
	client *api.Client
}

// NewOllamaAdapter creates an Ollama adapter for the given base URL.
func NewOllamaAdapter(baseURL string) *OllamaAdapter {
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		u, _ = url.Parse(defaultOllamaURL)
	}
	return &OllamaAdapter{
		client: api.NewClient(u, &http.Client{Timeout: ollamaTimeout}),
	}
}

func (a *OllamaAdapter) Vendor() string {
	return "ollama"
}

func (a *OllamaAdapter) Send(ctx context.Context, model string, msgs []Message, temperature float64) Outcome {
	messages := make([]api.Message, 0, len(msgs))
	for _, m := range msgs {
		messages = append(messages, api.Message{Role: m.Role, Content: m.Content})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": ClampTemperature(temperature),
		},
	}

	var reply strings.Builder
	err := a.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return Failuref("ollama: request failed: %v", err)
	}

	text := strings.TrimSpace(reply.String())
	if text == "" {
		return Ok(emptyOllamaReply)
	}
	return Ok(text)
}
