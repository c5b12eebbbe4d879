package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 8000, c.Server.Port)
	require.Equal(t, "chat.db", c.Database.Path)
	require.Equal(t, 12, c.Chat.ContextWindow)
	require.Equal(t, 0.7, c.Chat.DefaultTemperature)
	require.Equal(t, "gemini:gemini-1.5-flash", c.Chat.DefaultProvider)
	require.True(t, c.Chat.SimulateTyping)
	require.Equal(t, 5, c.Chat.Typing.CharsPerSecond)
	require.Equal(t, 300, c.Chat.Typing.MinDelayMs)
	require.Equal(t, 10000, c.Chat.Typing.MaxDelayMs)
	require.Equal(t, "https://openrouter.ai/api/v1", c.Providers.OpenRouter.BaseURL)
	require.Equal(t, "http://127.0.0.1:11434", c.Providers.Ollama.BaseURL)
}

func TestDefaultEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LAST_TURNS", "6")
	t.Setenv("TEMP_DEFAULT", "1.2")
	t.Setenv("DEFAULT_MODEL", "ollama:llama3")
	t.Setenv("GEMINI_API_KEY", "g-key")

	c := Default()
	require.Equal(t, 9000, c.Server.Port)
	require.Equal(t, 6, c.Chat.ContextWindow)
	require.Equal(t, 1.2, c.Chat.DefaultTemperature)
	require.Equal(t, "ollama:llama3", c.Chat.DefaultProvider)
	require.Equal(t, "g-key", c.Providers.Gemini.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, 8000, c.Server.Port)
}

func TestLoadYAML(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "duet.yaml")
	data := `
server:
  port: 9100
chat:
  contextWindow: 4
  defaultProvider: "groq:llama-3.1-8b-instant"
providers:
  gemini:
    apiKey: "$TEST_GEMINI_KEY"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9100, c.Server.Port)
	require.Equal(t, 4, c.Chat.ContextWindow)
	require.Equal(t, "groq:llama-3.1-8b-instant", c.Chat.DefaultProvider)
	require.Equal(t, "from-env", c.Providers.Gemini.APIKey)
	// Untouched sections keep their defaults.
	require.Equal(t, "chat.db", c.Database.Path)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
