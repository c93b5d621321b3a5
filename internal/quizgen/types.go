package quizgen

// Question is a parsed, answerable multiple-choice question.
// Created only by a successful parse and never mutated afterwards.
type Question struct {
	// Kanji is the character the question was generated for.
	Kanji string

	// Prompt is the question text shown to the learner.
	Prompt string

	// Choices holds exactly 4 options in the order they appeared in the
	// generated text. That order is positional and need not match the
	// A, B, C, D labels alphabetically.
	Choices []string

	// Answer is the text of the correct choice. Grading compares by text
	// equality, so Answer is always an element of Choices.
	Answer string
}

// GenerateInput holds the context for one generation request.
type GenerateInput struct {
	// Kanji is the target character.
	Kanji string

	// Level is the JLPT-style level the question targets, e.g. "5".
	Level string

	// TaskType is the question archetype to request.
	TaskType TaskType
}
