package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/kanjiz/internal/textgen"
)

func testInput() GenerateInput {
	return GenerateInput{Kanji: "水", Level: "5", TaskType: TaskBaseMeaning}
}

func TestGenerate_Success(t *testing.T) {
	mock := textgen.NewMockProvider(textgen.MockResponse{
		Text: "Which meaning fits 水?\nA. water\nB. fire\nC. wood\nD. metal\nAns: A\n---\nleftover",
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "water" {
		t.Errorf("expected answer water, got %q", q.Answer)
	}
	if q.Kanji != "水" {
		t.Errorf("expected kanji carried through, got %q", q.Kanji)
	}
}

func TestGenerate_SendsSamplingParams(t *testing.T) {
	mock := textgen.NewMockProvider(textgen.MockResponse{
		Text: "Q?\nA. a\nB. b\nC. c\nD. d\nAns: A",
	})
	cfg := DefaultConfig()
	cfg.MaxNewTokens = 220
	gen := New(mock, cfg)

	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 backend call, got %d", len(mock.Calls))
	}
	params := mock.Calls[0].Params
	if params.MaxNewTokens != 220 {
		t.Errorf("max_new_tokens: got %d", params.MaxNewTokens)
	}
	if params.Temperature != 0.6 || params.TopP != 0.9 || params.TopK != 0 {
		t.Errorf("unexpected sampling params: %+v", params)
	}
	if params.RepetitionPenalty != 1.1 || params.DoSample || params.Seed != -1 {
		t.Errorf("unexpected sampling params: %+v", params)
	}
}

func TestGenerate_PromptMentionsKanjiAndFormat(t *testing.T) {
	mock := textgen.NewMockProvider(textgen.MockResponse{
		Text: "Q?\nA. a\nB. b\nC. c\nD. d\nAns: A",
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Prompt
	for _, want := range []string{"水", "N5", "Ans:", "A. ", "---"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerate_BackendFailure(t *testing.T) {
	mock := textgen.NewMockProvider(textgen.MockResponse{
		Err: &textgen.ErrProviderUnavailable{},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerate_BlankText(t *testing.T) {
	mock := textgen.NewMockProvider(textgen.MockResponse{Text: "   \n  "})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed for blank text, got %v", err)
	}
}

func TestGenerate_UnparsableText(t *testing.T) {
	mock := textgen.NewMockProvider(textgen.MockResponse{
		Text: "The kanji 水 means water. Hope that helps!",
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Kind != ParseMissingAnswerMarker {
		t.Errorf("expected MissingAnswerMarker, got %s", perr.Kind)
	}
	if errors.Is(err, ErrGenerationFailed) {
		t.Error("parse failure must not be reported as a backend failure")
	}
}

func TestBuildPrompt_TaskTypes(t *testing.T) {
	for _, tt := range AllTaskTypes() {
		prompt := buildPrompt(GenerateInput{Kanji: "海", Level: "4", TaskType: tt})
		if !strings.Contains(prompt, "海") {
			t.Errorf("%s: prompt missing kanji", tt)
		}
		if !strings.Contains(prompt, "Ans: X") {
			t.Errorf("%s: prompt missing format rules", tt)
		}
	}

	// Distinct task types must produce distinct instructions.
	a := buildPrompt(GenerateInput{Kanji: "海", Level: "4", TaskType: TaskBaseMeaning})
	b := buildPrompt(GenerateInput{Kanji: "海", Level: "4", TaskType: TaskReading})
	if a == b {
		t.Error("base-meaning and reading prompts are identical")
	}
}
