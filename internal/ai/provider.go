// Package ai holds the provider adapters. Each adapter translates the
// normalized message list into one vendor's wire format, executes the call
// and maps every possible failure (missing key, HTTP error, network error,
// malformed payload, safety block) into an Outcome the caller can always
// render as a chat reply. Adapters never return transport errors.
package ai

import (
	"context"
	"fmt"
	"sort"
)

// Chat roles as stored and as sent to providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the normalized chat turn sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Outcome is the result of a provider call. Both variants carry text that
// is rendered to the end user; Failed only marks that the text is a
// diagnostic placeholder rather than a model reply.
type Outcome struct {
	Text   string
	Failed bool
}

// Ok returns a successful outcome.
func Ok(text string) Outcome {
	return Outcome{Text: text}
}

// Failuref returns a failed outcome with a human-readable reason.
func Failuref(format string, v ...any) Outcome {
	return Outcome{Text: fmt.Sprintf(format, v...), Failed: true}
}

// Adapter is implemented once per backend vendor.
type Adapter interface {
	// Vendor returns the key this adapter registers under ("gemini",
	// "ollama", ...), matched against the provider spec prefix.
	Vendor() string

	// Send dispatches the message list to the given model and returns an
	// Outcome. Implementations must not propagate transport errors.
	Send(ctx context.Context, model string, msgs []Message, temperature float64) Outcome
}

// Registry maps vendor keys to adapters. New vendors register without the
// turn engine changing.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates a registry with the given adapters pre-registered.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

// Register adds or replaces the adapter for its vendor key.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Vendor()] = a
}

// Lookup returns the adapter for a vendor key.
func (r *Registry) Lookup(vendor string) (Adapter, bool) {
	a, ok := r.adapters[vendor]
	return a, ok
}

// Vendors returns the registered vendor keys, sorted.
func (r *Registry) Vendors() []string {
	out := make([]string, 0, len(r.adapters))
	for v := range r.adapters {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ClampTemperature bounds a sampling temperature to the [0, 2] range every
// vendor accepts.
func ClampTemperature(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 2 {
		return 2
	}
	return t
}

// truncate bounds raw response snippets embedded in failure outcomes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
