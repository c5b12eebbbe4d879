package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiTimeout bounds one generateContent call. Cloud calls are expected
// to answer quickly or not at all.
const geminiTimeout = 60 * time.Second

// GeminiAdapter sends chat turns to the Google Generative Language API.
// System entries become the model's system instruction; assistant turns map
// to the "model" role.
type GeminiAdapter struct {
	apiKey string
}

// NewGeminiAdapter creates a Gemini adapter. An empty key is allowed: calls
// then return a visible diagnostic instead of failing, so a half-configured
// deployment still chats.
func NewGeminiAdapter(apiKey string) *GeminiAdapter {
	return &GeminiAdapter{apiKey: apiKey}
}

func (a *GeminiAdapter) Vendor() string {
	return "gemini"
}

func (a *GeminiAdapter) Send(ctx context.Context, model string, msgs []Message, temperature float64) Outcome {
	if a.apiKey == "" {
		return Ok("(GEMINI_API_KEY is not set)")
	}

	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return Failuref("gemini: create client: %v", err)
	}
	defer client.Close()

	m := client.GenerativeModel(model)
	m.SetTemperature(float32(ClampTemperature(temperature)))

	if sys := systemParts(msgs); len(sys) > 0 {
		m.SystemInstruction = &genai.Content{Parts: sys}
	}

	contents := geminiContents(msgs)
	if len(contents) == 0 {
		return Failuref("gemini: no messages to send")
	}

	last := contents[len(contents)-1]
	cs := m.StartChat()
	cs.History = contents[:len(contents)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			if blocked.PromptFeedback != nil {
				return Ok(fmt.Sprintf("(gemini blocked the request: %v)", blocked.PromptFeedback.BlockReason))
			}
			if blocked.Candidate != nil {
				return Ok(fmt.Sprintf("(gemini stopped the response: %v)", blocked.Candidate.FinishReason))
			}
			return Ok("(gemini blocked the request)")
		}
		return Failuref("gemini: request failed: %v", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if out := strings.TrimSpace(sb.String()); out != "" {
			return Ok(out)
		}
	}

	if len(resp.Candidates) > 0 {
		return Ok(fmt.Sprintf("(gemini returned no text; finishReason=%v)", resp.Candidates[0].FinishReason))
	}
	return Ok("(gemini returned no candidates)")
}

// systemParts collects system entries for the system instruction field.
func systemParts(msgs []Message) []genai.Part {
	var parts []genai.Part
	for _, m := range msgs {
		if m.Role == RoleSystem {
			parts = append(parts, genai.Text(m.Content))
		}
	}
	return parts
}

// geminiContents maps user/assistant entries to Gemini contents. Gemini
// rejects histories that do not start with "user" or that repeat a role, so
// a leading filler turn is inserted and consecutive same-role entries are
// merged. The returned slice always ends with a "user" content.
func geminiContents(msgs []Message) []*genai.Content {
	var out []*genai.Content
	for _, m := range msgs {
		var role string
		switch m.Role {
		case RoleUser:
			role = "user"
		case RoleAssistant:
			role = "model"
		default:
			continue
		}

		if len(out) == 0 && role != "user" {
			out = append(out, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text("Continue.")}})
		}
		if len(out) > 0 && out[len(out)-1].Role == role {
			last := out[len(out)-1]
			last.Parts = append(last.Parts, genai.Text(m.Content))
			continue
		}
		out = append(out, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}

	if len(out) > 0 && out[len(out)-1].Role != "user" {
		out = append(out, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text("Continue.")}})
	}
	return out
}
