// Package config loads the duet configuration from a YAML file with
// environment variable expansion, falling back to env vars and built-in
// defaults so the server runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Chat      ChatConfig      `yaml:"chat"`
	Providers ProvidersConfig `yaml:"providers"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ChatConfig carries the orchestration constants. They are passed into the
// turn engine explicitly; nothing in internal/chat reads the environment.
type ChatConfig struct {
	ContextWindow      int          `yaml:"contextWindow"`
	DefaultTemperature float64      `yaml:"defaultTemperature"`
	DefaultProvider    string       `yaml:"defaultProvider"`
	SimulateTyping     bool         `yaml:"simulateTyping"`
	Typing             TypingConfig `yaml:"typing"`
}

type TypingConfig struct {
	CharsPerSecond int `yaml:"charsPerSecond"`
	MinDelayMs     int `yaml:"minDelayMs"`
	MaxDelayMs     int `yaml:"maxDelayMs"`
}

type ProvidersConfig struct {
	Gemini     GeminiConfig `yaml:"gemini"`
	OpenRouter OpenAIConfig `yaml:"openrouter"`
	Groq       OpenAIConfig `yaml:"groq"`
	Ollama     OllamaConfig `yaml:"ollama"`
}

type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
}

type OllamaConfig struct {
	BaseURL string `yaml:"baseUrl"`
}

// Default returns the built-in configuration with env var overrides applied.
// The env names match the original deployment (.env) convention.
func Default() Config {
	var c Config
	c.Server.Port = envInt("PORT", 8000)
	c.Server.AllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	c.Database.Path = envStr("DB_PATH", "chat.db")
	c.Chat.ContextWindow = envInt("LAST_TURNS", 12)
	c.Chat.DefaultTemperature = envFloat("TEMP_DEFAULT", 0.7)
	c.Chat.DefaultProvider = envStr("DEFAULT_MODEL", "gemini:gemini-1.5-flash")
	c.Chat.SimulateTyping = true
	c.Chat.Typing = TypingConfig{CharsPerSecond: 5, MinDelayMs: 300, MaxDelayMs: 10000}
	c.Providers.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	c.Providers.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	c.Providers.OpenRouter.BaseURL = envStr("OPENROUTER_URL", "https://openrouter.ai/api/v1")
	c.Providers.Groq.APIKey = os.Getenv("GROQ_API_KEY")
	c.Providers.Groq.BaseURL = envStr("GROQ_URL", "https://api.groq.com/openai/v1")
	c.Providers.Ollama.BaseURL = envStr("OLLAMA_URL", "http://127.0.0.1:11434")
	return c
}

// Load reads a YAML config file on top of the defaults. A missing file is
// not an error; $VARS inside the file are expanded before parsing.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func envStr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envFloat(name string, def float64) float64 {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
