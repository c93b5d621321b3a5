package quizscreen

import (
	"github.com/abhisek/kanjiz/internal/quizgen"
)

// questionReadyMsg is sent when question generation finishes, either with
// a parsed question or with the failure that ended the attempt.
type questionReadyMsg struct {
	Question *quizgen.Question
	Err      error
}
