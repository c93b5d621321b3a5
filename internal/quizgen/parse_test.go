package quizgen

import (
	"errors"
	"reflect"
	"testing"
)

func parseKind(t *testing.T, kanji, raw string) ParseFailureKind {
	t.Helper()
	_, err := ParseMCQ(kanji, raw)
	if err == nil {
		t.Fatal("expected parse failure, got success")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	return perr.Kind
}

func TestParseMCQ_WellFormed(t *testing.T) {
	raw := "Which meaning fits 水?\nA. water\nB. fire\nC. wood\nD. metal\nAns: A\n---\nnotes"

	q, err := ParseMCQ("水", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Kanji != "水" {
		t.Errorf("kanji: got %q", q.Kanji)
	}
	if q.Prompt != "Which meaning fits 水?" {
		t.Errorf("prompt: got %q", q.Prompt)
	}
	want := []string{"water", "fire", "wood", "metal"}
	if !reflect.DeepEqual(q.Choices, want) {
		t.Errorf("choices: got %v, want %v", q.Choices, want)
	}
	if q.Answer != "water" {
		t.Errorf("answer: got %q, want the choice text, not the letter", q.Answer)
	}
}

func TestParseMCQ_SentinelTruncation(t *testing.T) {
	base := "Q?\nA. a\nB. b\nC. c\nD. d\nAns: B"

	// Anything after the first "\n---" never influences the result, even
	// a second well-formed question.
	withJunk := base + "\n---\nQ2?\nA. x\nB. y\nC. z\nD. w\nAns: D\n---\nmore"

	q1, err := ParseMCQ("火", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q2, err := ParseMCQ("火", withJunk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q1, q2) {
		t.Errorf("trailing text changed the result: %+v vs %+v", q1, q2)
	}
}

func TestParseMCQ_Deterministic(t *testing.T) {
	inputs := []string{
		"Q?\nA. a\nB. b\nC. c\nD. d\nAns: C",
		"",
		"garbage with no marker",
		"Ans: E\nA. a\nB. b\nC. c\nD. d",
	}
	for _, raw := range inputs {
		qa, ea := ParseMCQ("水", raw)
		qb, eb := ParseMCQ("水", raw)
		if !reflect.DeepEqual(qa, qb) {
			t.Errorf("non-deterministic question for %q", raw)
		}
		if (ea == nil) != (eb == nil) {
			t.Fatalf("non-deterministic error for %q", raw)
		}
		if ea != nil && ea.Error() != eb.Error() {
			t.Errorf("non-deterministic failure for %q: %v vs %v", raw, ea, eb)
		}
	}
}

func TestParseMCQ_AnswerMembership(t *testing.T) {
	raws := []string{
		"Q?\nA. alpha\nB. beta\nC. gamma\nD. delta\nAns: A",
		"Q?\nA. alpha\nB. beta\nC. gamma\nD. delta\nAns: b",
		"Q?\nA. alpha\nB. beta\nC. gamma\nD. delta\nans:  D",
	}
	for _, raw := range raws {
		q, err := ParseMCQ("水", raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if len(q.Choices) != 4 {
			t.Fatalf("expected exactly 4 choices, got %d", len(q.Choices))
		}
		found := false
		for _, c := range q.Choices {
			if c == q.Answer {
				found = true
			}
		}
		if !found {
			t.Errorf("answer %q not among choices %v", q.Answer, q.Choices)
		}
	}
}

func TestParseMCQ_EmptyOutput(t *testing.T) {
	for _, raw := range []string{"", "   \n\t\n", "\n---\neverything after the sentinel"} {
		if kind := parseKind(t, "水", raw); kind != ParseEmptyOutput {
			t.Errorf("%q: expected EmptyOutput, got %s", raw, kind)
		}
	}
}

func TestParseMCQ_MissingAnswerMarker(t *testing.T) {
	raw := "Q?\nA. a\nB. b\nC. c\nD. d"
	if kind := parseKind(t, "水", raw); kind != ParseMissingAnswerMarker {
		t.Errorf("expected MissingAnswerMarker, got %s", kind)
	}
}

func TestParseMCQ_WrongChoiceCount(t *testing.T) {
	cases := []string{
		"Q?\nA. a\nB. b\nC. c\nAns: A",                      // only 3
		"Q?\nA. a\nB. b\nC. c\nD. d\nD. extra\nAns: A",      // 5
		"Q?\na. a\nB. b\nC. c\nD. d\nAns: A",                // lowercase label doesn't count
		"Q?\nA.a\nB. b\nC. c\nD. d\nAns: A",                 // no space after period
		"Q?\nE. a\nA. b\nB. c\nC. d\nAns: A",                // E is not a choice label
	}
	for _, raw := range cases {
		if kind := parseKind(t, "水", raw); kind != ParseWrongChoiceCount {
			t.Errorf("%q: expected WrongChoiceCount, got %s", raw, kind)
		}
	}
}

func TestParseMCQ_InvalidAnswerLetter(t *testing.T) {
	// The bad letter is reported even though the choice block is also
	// missing (all options sit after the marker here).
	raw := "Ans: E\nA. a\nB. b\nC. c\nD. d"
	if kind := parseKind(t, "水", raw); kind != ParseInvalidAnswerLetter {
		t.Errorf("expected InvalidAnswerLetter, got %s", kind)
	}

	raw = "Q?\nA. a\nB. b\nC. c\nD. d\nAns: 3"
	if kind := parseKind(t, "水", raw); kind != ParseInvalidAnswerLetter {
		t.Errorf("expected InvalidAnswerLetter for digit, got %s", kind)
	}
}

func TestParseMCQ_ChoiceOrderIsPositional(t *testing.T) {
	// Labels out of alphabetical order: choices keep document order and
	// the answer letter indexes into that order.
	raw := "Q?\nD. first\nC. second\nB. third\nA. fourth\nAns: A"
	q, err := ParseMCQ("水", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Choices[0] != "first" || q.Choices[3] != "fourth" {
		t.Errorf("choices not in document order: %v", q.Choices)
	}
	if q.Answer != "first" {
		t.Errorf("Ans: A must select position 0, got %q", q.Answer)
	}
}

func TestParseMCQ_FirstContentLineIsPrompt(t *testing.T) {
	// The first content line is always the prompt, even when it looks
	// like a choice line. The four remaining lines form the choice block.
	raw := "A. a\nB. b\nC. c\nD. d\nD. e\nAns: A"
	q, err := ParseMCQ("水", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Prompt != "A. a" {
		t.Errorf("expected first line as prompt, got %q", q.Prompt)
	}
	if q.Answer != "b" {
		t.Errorf("Ans: A must select the first remaining choice, got %q", q.Answer)
	}
}

func TestParseMCQ_EmptyContentBlockFails(t *testing.T) {
	// A marker-first block has no content lines, so the prompt fallback
	// applies but the choice count check still rejects it.
	raw := "Ans: A"
	if kind := parseKind(t, "水", raw); kind != ParseWrongChoiceCount {
		t.Errorf("expected WrongChoiceCount, got %s", kind)
	}
}

func TestParseMCQ_BlankLinesAndPadding(t *testing.T) {
	raw := "\n\n  Which meaning fits 水?  \n\n  A.  water \nB. fire\n\nC. wood\nD. metal\n\n  ANS: a \n"
	q, err := ParseMCQ("水", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Prompt != "Which meaning fits 水?" {
		t.Errorf("prompt not trimmed: %q", q.Prompt)
	}
	if q.Choices[0] != "water" {
		t.Errorf("choice text not trimmed: %q", q.Choices[0])
	}
	if q.Answer != "water" {
		t.Errorf("case-insensitive marker failed: %q", q.Answer)
	}
}

func TestParseMCQ_DuplicateChoicesAccepted(t *testing.T) {
	// Duplicate choice text is ambiguous for text-equality grading but is
	// accepted, matching the upstream contract.
	raw := "Q?\nA. same\nB. same\nC. other\nD. more\nAns: B"
	q, err := ParseMCQ("水", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "same" {
		t.Errorf("expected duplicate text answer, got %q", q.Answer)
	}
}
