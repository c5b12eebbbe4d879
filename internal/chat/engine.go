package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/duetchat/duet/internal/ai"
	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/logging"
)

// unsupportedProviderReply is delivered as a normal assistant turn when the
// requested vendor has no adapter, so the thread keeps a coherent history.
const unsupportedProviderReply = "(only gemini:*, openrouter:*, groq:* and ollama:* providers are supported)"

// Store is the persistence surface the engine needs. *db.Store satisfies it.
type Store interface {
	GetPersona(ctx context.Context, id string) (db.Persona, error)
	GetOrCreateThread(ctx context.Context, arg db.GetOrCreateThreadParams) (db.Thread, error)
	AppendMessage(ctx context.Context, arg db.AppendMessageParams) (db.Message, error)
	RecentMessages(ctx context.Context, threadID string, limit int) ([]db.Message, error)
}

// Config carries the engine's tunables.
type Config struct {
	// ContextWindow is how many recent messages accompany each turn.
	ContextWindow int
	// DefaultTemperature is used when a turn does not set one.
	DefaultTemperature float64
	// SimulateTyping enables the reply delay unless a turn overrides it.
	SimulateTyping bool
	Typing         TypingConfig
}

// Engine runs one conversation turn end to end: resolve persona, persist
// the user message, assemble the prompt, call the provider, sanitize and
// pace the reply, persist it.
type Engine struct {
	store    Store
	registry *ai.Registry
	cfg      Config

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewEngine creates an engine over the given store and adapter registry.
func NewEngine(store Store, registry *ai.Registry, cfg Config) *Engine {
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = 12
	}
	if cfg.Typing == (TypingConfig{}) {
		cfg.Typing = DefaultTypingConfig()
	}
	return &Engine{
		store:    store,
		registry: registry,
		cfg:      cfg,
		sleep:    time.Sleep,
	}
}

// TurnRequest is one user turn. ThreadID may be empty, in which case a new
// thread is created. Temperature and SimulateTyping override the engine
// defaults when set.
type TurnRequest struct {
	ThreadID       string
	PersonaID      string
	Message        string
	ProviderSpec   string
	Temperature    *float64
	SimulateTyping *bool
}

// TurnResult is the persisted outcome of a turn.
type TurnResult struct {
	ThreadID         string
	Text             string
	UserMessage      db.Message
	AssistantMessage db.Message
}

// SplitProviderSpec splits "<vendor>:<model>" on the first colon, so model
// names may themselves contain colons ("ollama:llama3.1:8b"). A spec with
// no colon is all vendor.
func SplitProviderSpec(spec string) (vendor, model string) {
	vendor, model, _ = strings.Cut(spec, ":")
	return strings.TrimSpace(vendor), strings.TrimSpace(model)
}

// HandleTurn processes one user message and returns the assistant's reply.
// An unknown persona fails before anything is persisted. Provider failures
// do not: the diagnostic text is stored as the assistant turn so the user
// always gets an answer.
func (e *Engine) HandleTurn(ctx context.Context, req TurnRequest) (TurnResult, error) {
	persona, err := e.store.GetPersona(ctx, req.PersonaID)
	if err != nil {
		return TurnResult{}, err
	}

	threadID := req.ThreadID
	if threadID == "" {
		threadID = uuid.New().String()
	}
	thread, err := e.store.GetOrCreateThread(ctx, db.GetOrCreateThreadParams{
		ID:           threadID,
		PersonaID:    persona.ID,
		ProviderSpec: req.ProviderSpec,
	})
	if err != nil {
		return TurnResult{}, err
	}

	userMsg, err := e.store.AppendMessage(ctx, db.AppendMessageParams{
		ThreadID: thread.ID,
		Role:     ai.RoleUser,
		Content:  req.Message,
	})
	if err != nil {
		return TurnResult{}, err
	}

	recent, err := e.store.RecentMessages(ctx, thread.ID, e.cfg.ContextWindow)
	if err != nil {
		return TurnResult{}, err
	}
	prompt := Assemble(persona, thread.Summary, recent)

	text := e.generate(ctx, req.ProviderSpec, prompt, req.Temperature)

	simulate := e.cfg.SimulateTyping
	if req.SimulateTyping != nil {
		simulate = *req.SimulateTyping
	}
	if simulate {
		e.sleep(e.cfg.Typing.Delay(text))
	}

	assistantMsg, err := e.store.AppendMessage(ctx, db.AppendMessageParams{
		ThreadID: thread.ID,
		Role:     ai.RoleAssistant,
		Content:  text,
	})
	if err != nil {
		return TurnResult{}, err
	}

	return TurnResult{
		ThreadID:         thread.ID,
		Text:             text,
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
	}, nil
}

// generate dispatches the prompt and reduces the outcome to the reply text.
// A failed outcome becomes a parenthesized in-band diagnostic.
func (e *Engine) generate(ctx context.Context, providerSpec string, prompt []ai.Message, temperature *float64) string {
	vendor, model := SplitProviderSpec(providerSpec)

	adapter, ok := e.registry.Lookup(vendor)
	if !ok {
		logging.Warnf("chat: no adapter for provider %q", vendor)
		return unsupportedProviderReply
	}

	temp := e.cfg.DefaultTemperature
	if temperature != nil {
		temp = *temperature
	}

	// Ok and Failure are rendered the same way: the text becomes the
	// assistant's reply either way, so a broken provider degrades the
	// conversation instead of aborting the turn.
	out := adapter.Send(ctx, model, prompt, temp)
	if out.Failed {
		logging.Warnf("chat: %s/%s failed: %s", vendor, model, out.Text)
		return "(" + out.Text + ")"
	}
	return ai.StripReasoning(out.Text)
}
