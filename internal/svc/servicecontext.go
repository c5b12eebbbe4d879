package svc

import (
	"time"

	"github.com/duetchat/duet/internal/ai"
	"github.com/duetchat/duet/internal/chat"
	"github.com/duetchat/duet/internal/config"
	"github.com/duetchat/duet/internal/db"
)

// ServiceContext holds the shared dependencies handed to every handler.
type ServiceContext struct {
	Config *config.Config
	DB     *db.Store
	Engine *chat.Engine
}

// NewServiceContext opens the database and wires the adapter registry and
// conversation engine from the config.
func NewServiceContext(cfg *config.Config) (*ServiceContext, error) {
	store, err := db.NewSQLite(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	registry := ai.NewRegistry(
		ai.NewGeminiAdapter(cfg.Providers.Gemini.APIKey),
		ai.NewOpenRouterAdapter(cfg.Providers.OpenRouter.APIKey, cfg.Providers.OpenRouter.BaseURL),
		ai.NewGroqAdapter(cfg.Providers.Groq.APIKey, cfg.Providers.Groq.BaseURL),
		ai.NewOllamaAdapter(cfg.Providers.Ollama.BaseURL),
	)

	engine := chat.NewEngine(store, registry, chat.Config{
		ContextWindow:      cfg.Chat.ContextWindow,
		DefaultTemperature: cfg.Chat.DefaultTemperature,
		SimulateTyping:     cfg.Chat.SimulateTyping,
		Typing: chat.TypingConfig{
			CharsPerSecond: cfg.Chat.Typing.CharsPerSecond,
			MinDelay:       time.Duration(cfg.Chat.Typing.MinDelayMs) * time.Millisecond,
			MaxDelay:       time.Duration(cfg.Chat.Typing.MaxDelayMs) * time.Millisecond,
		},
	})

	return &ServiceContext{
		Config: cfg,
		DB:     store,
		Engine: engine,
	}, nil
}

// Close releases the service context's resources.
func (s *ServiceContext) Close() error {
	return s.DB.Close()
}
