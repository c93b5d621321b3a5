package quiz

import "github.com/abhisek/kanjiz/internal/quizgen"

// Result is the graded outcome of the current round.
type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultWrong
)

// Label returns the display label for a result.
func (r Result) Label() string {
	switch r {
	case ResultCorrect:
		return "Correct"
	case ResultWrong:
		return "Wrong"
	default:
		return ""
	}
}

// Round holds the per-question UI state: the current question, the
// learner's selection, and the graded result. It is owned exclusively by
// one Session and replaced wholesale on every generate.
type Round struct {
	Question  *quizgen.Question
	Selection int
	Result    Result
}

// Reset clears the round. Called explicitly at the start of every
// generate action, never implicitly.
func (r *Round) Reset() {
	r.Question = nil
	r.Selection = -1
	r.Result = ResultNone
}
