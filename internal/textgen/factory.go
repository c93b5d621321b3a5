package textgen

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/kanjiz/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// standard middleware: caller → timeout → logging → base. There is no
// retry layer; a failed generation is reported and waits for the next
// user-initiated attempt.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "webui":
		base, err = NewWebUIProvider(cfg.WebUI)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown textgen provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = base
	if eventRepo != nil {
		p = WithLogging(p, eventRepo)
	}
	p = WithTimeout(p, cfg.Timeout)

	return p, nil
}

// NewProviderFromEnv builds a Provider from KANJIZ_* environment variables
// when a provider is selected explicitly, otherwise probes standard backend
// variables in discovery order.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	if os.Getenv("KANJIZ_TEXTGEN_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, eventRepo)
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no generation backend configured: set KANJIZ_TEXTGEN_PROVIDER, KANJIZ_WEBUI_URL, or one of GEMINI_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY")
	}
	return NewProvider(ctx, cfg, eventRepo)
}
