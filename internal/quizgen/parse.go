package quizgen

import (
	"fmt"
	"strings"
)

// ParseFailureKind classifies why generated text could not be parsed.
type ParseFailureKind string

const (
	ParseEmptyOutput         ParseFailureKind = "empty-output"
	ParseMissingAnswerMarker ParseFailureKind = "missing-answer-marker"
	ParseWrongChoiceCount    ParseFailureKind = "wrong-choice-count"
	ParseInvalidAnswerLetter ParseFailureKind = "invalid-answer-letter"
)

// ParseError reports unparsable generated text. The kind is stable for a
// given input; callers surface a single "unparsable output" message and
// log the kind for diagnosis.
type ParseError struct {
	Kind   ParseFailureKind
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("unparsable output (%s): %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("unparsable output (%s)", e.Kind)
}

const (
	// answerLabel marks the answer line, matched case-insensitively at
	// the start of a line.
	answerLabel = "Ans:"

	// sentinel cuts off trailing continuation text from the backend.
	sentinel = "\n---"

	// promptFallback stands in when the generated text has no content
	// line before the answer marker. Not a failure: such output is still
	// renderable.
	promptFallback = "Question"

	choiceCount = 4
)

// answerIndex maps the extracted answer letter to a choice position.
var answerIndex = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}

// ParseMCQ converts the backend's raw text into a Question.
//
// The expected format is a de facto wire contract with the backend's
// prompt: a question line, four "A. ".."D. " option lines, an "Ans: X"
// line, and an optional "---" sentinel whose trailing text is discarded.
// The function is pure: identical input always yields an identical
// Question or an identical failure kind.
func ParseMCQ(kanji, raw string) (*Question, error) {
	body, _, _ := strings.Cut(raw, sentinel)
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &ParseError{Kind: ParseEmptyOutput}
	}

	var lines []string
	for _, l := range strings.Split(body, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	marker := -1
	for i, l := range lines {
		if isAnswerLine(l) {
			marker = i
			break
		}
	}
	if marker == -1 {
		return nil, &ParseError{Kind: ParseMissingAnswerMarker}
	}

	letter := strings.ToUpper(strings.TrimSpace(lines[marker][len(answerLabel):]))

	// The letter is validated before the choice lines: a bad letter is
	// reported even when the choice block is also malformed.
	idx, ok := answerIndex[letter]
	if !ok {
		return nil, &ParseError{Kind: ParseInvalidAnswerLetter, Detail: fmt.Sprintf("got %q", letter)}
	}

	content := lines[:marker]
	prompt := promptFallback
	var rest []string
	if len(content) > 0 {
		prompt = content[0]
		rest = content[1:]
	}

	var choices []string
	for _, l := range rest {
		if text, ok := choiceLine(l); ok {
			choices = append(choices, text)
		}
	}
	if len(choices) != choiceCount {
		return nil, &ParseError{Kind: ParseWrongChoiceCount, Detail: fmt.Sprintf("got %d", len(choices))}
	}

	return &Question{
		Kanji:   kanji,
		Prompt:  prompt,
		Choices: choices,
		Answer:  choices[idx],
	}, nil
}

// isAnswerLine reports whether a trimmed line starts with the answer
// label, case-insensitively.
func isAnswerLine(line string) bool {
	return len(line) >= len(answerLabel) && strings.EqualFold(line[:len(answerLabel)], answerLabel)
}

// choiceLine matches a trimmed line of the form "<Letter>. <text>" with a
// single capital A-D, a period, and at least one space or tab, returning
// the trimmed option text.
func choiceLine(line string) (string, bool) {
	if len(line) < 4 {
		return "", false
	}
	if line[0] < 'A' || line[0] > 'D' || line[1] != '.' {
		return "", false
	}
	if line[2] != ' ' && line[2] != '\t' {
		return "", false
	}
	return strings.TrimSpace(line[3:]), true
}
