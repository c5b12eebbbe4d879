package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// openAITimeout bounds one chat-completions call.
const openAITimeout = 60 * time.Second

// rawSnippetLen bounds the response snippet embedded in failure outcomes.
const rawSnippetLen = 300

// OpenAIAdapter serves every OpenAI-compatible backend. The same code runs
// against the OpenRouter aggregator and against direct vendors like Groq;
// only the vendor key, base URL and credentials differ.
type OpenAIAdapter struct {
	vendor  string
	apiKey  string
	keyName string
	client  openai.Client
}

// NewOpenAIAdapter creates an adapter for an OpenAI-compatible endpoint.
// keyName is the env var reported when the key is missing. extraHeaders are
// attached to every request.
func NewOpenAIAdapter(vendor, apiKey, keyName, baseURL string, extraHeaders map[string]string) *OpenAIAdapter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: openAITimeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	for k, v := range extraHeaders {
		opts = append(opts, option.WithHeader(k, v))
	}
	return &OpenAIAdapter{
		vendor:  vendor,
		apiKey:  apiKey,
		keyName: keyName,
		client:  openai.NewClient(opts...),
	}
}

// NewOpenRouterAdapter creates the adapter for the OpenRouter aggregator.
// The attribution headers are the ones OpenRouter asks clients to send.
func NewOpenRouterAdapter(apiKey, baseURL string) *OpenAIAdapter {
	return NewOpenAIAdapter("openrouter", apiKey, "OPENROUTER_API_KEY", baseURL, map[string]string{
		"HTTP-Referer": "http://localhost",
		"X-Title":      "duet persona chat",
	})
}

// NewGroqAdapter creates the adapter for the Groq inference API.
func NewGroqAdapter(apiKey, baseURL string) *OpenAIAdapter {
	return NewOpenAIAdapter("groq", apiKey, "GROQ_API_KEY", baseURL, nil)
}

func (a *OpenAIAdapter) Vendor() string {
	return a.vendor
}

func (a *OpenAIAdapter) Send(ctx context.Context, model string, msgs []Message, temperature float64) Outcome {
	if a.apiKey == "" {
		return Ok("(" + a.keyName + " is not set)")
	}

	comp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    a.buildMessages(msgs),
		Temperature: openai.Float(ClampTemperature(temperature)),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return Failuref("%s: HTTP %d: %s", a.vendor, apierr.StatusCode, truncate(apierr.RawJSON(), rawSnippetLen))
		}
		return Failuref("%s: network error: %v", a.vendor, err)
	}

	if len(comp.Choices) == 0 {
		return Failuref("%s: unexpected response: %s", a.vendor, truncate(comp.RawJSON(), rawSnippetLen))
	}

	text := strings.TrimSpace(StripReasoning(comp.Choices[0].Message.Content))
	if text == "" {
		return Failuref("%s: empty completion: %s", a.vendor, truncate(comp.RawJSON(), rawSnippetLen))
	}
	return Ok(text)
}

// buildMessages maps the normalized turn to the OpenAI message union.
// Roles outside the chat triple are coerced to user.
func (a *OpenAIAdapter) buildMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
