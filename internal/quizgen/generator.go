package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/kanjiz/internal/textgen"
)

// ErrGenerationFailed wraps every backend failure (network error,
// non-success status, empty output) into one signal. The caller does not
// distinguish subtypes; they all mean "no usable text this time".
var ErrGenerationFailed = errors.New("generation backend returned no usable text")

// Generator produces quiz questions for a kanji.
type Generator interface {
	// Generate produces a single validated question for the given input.
	// Failures are either ErrGenerationFailed (no text from the backend)
	// or a *ParseError (text that doesn't follow the expected format).
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// TextGenerator implements Generator on top of a textgen.Provider.
type TextGenerator struct {
	provider textgen.Provider
	config   Config
}

// New creates a TextGenerator with the given provider and config.
func New(provider textgen.Provider, cfg Config) *TextGenerator {
	return &TextGenerator{provider: provider, config: cfg}
}

// Generate builds the prompt, requests a completion, and parses the raw
// text into a Question.
func (g *TextGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = textgen.WithPurpose(ctx, "question-gen")

	req := textgen.Request{
		Prompt: buildPrompt(input),
		Params: g.config.samplingParams(),
	}

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, ErrGenerationFailed
	}

	return ParseMCQ(input.Kanji, resp.Text)
}
