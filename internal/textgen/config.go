package textgen

import (
	"fmt"
	"os"
	"time"
)

// Config holds all generation backend configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "webui", "openai", "anthropic", "gemini", "mock"
	Provider string

	WebUI     WebUIConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig

	// Timeout is the maximum duration for a single completion request.
	// The backend's latency is unbounded, so a deadline is always applied.
	// Default: 30s.
	Timeout time.Duration
}

// WebUIConfig holds configuration for a local text-generation-webui or
// KoboldCpp style server.
type WebUIConfig struct {
	BaseURL string // Default: "http://127.0.0.1:5000"
	Model   string // Informational only; the server decides what is loaded.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "webui",
		WebUI: WebUIConfig{
			BaseURL: "http://127.0.0.1:5000",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("KANJIZ_TEXTGEN_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if u := os.Getenv("KANJIZ_WEBUI_URL"); u != "" {
		cfg.WebUI.BaseURL = u
	}
	if m := os.Getenv("KANJIZ_WEBUI_MODEL"); m != "" {
		cfg.WebUI.Model = m
	}

	if k := os.Getenv("KANJIZ_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("KANJIZ_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("KANJIZ_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("KANJIZ_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("KANJIZ_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("KANJIZ_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("KANJIZ_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if t := os.Getenv("KANJIZ_TEXTGEN_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig probes standard env vars in priority order (local web UI →
// Gemini → OpenAI → Anthropic) and returns a Config for the first backend
// that is configured. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if u := os.Getenv("KANJIZ_WEBUI_URL"); u != "" {
		cfg.Provider = "webui"
		cfg.WebUI.BaseURL = u
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected backend has its required settings.
func (c Config) Validate() error {
	switch c.Provider {
	case "webui":
		if c.WebUI.BaseURL == "" {
			return fmt.Errorf("KANJIZ_WEBUI_URL is required for the webui provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("KANJIZ_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("KANJIZ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("KANJIZ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No configuration needed.
	default:
		return fmt.Errorf("unknown textgen provider: %q", c.Provider)
	}
	return nil
}
