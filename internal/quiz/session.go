package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kanjiz/internal/kanjidict"
	"github.com/abhisek/kanjiz/internal/quizgen"
	"github.com/abhisek/kanjiz/internal/store"
)

var (
	// ErrNoQuestion is returned when a choice is selected with no
	// question current.
	ErrNoQuestion = errors.New("no question to answer")

	// ErrAlreadyAnswered is returned when the current question already
	// has a recorded result.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// Session runs one quiz for one level: it picks an eligible kanji, asks
// the generator for a question, and grades the learner's pick. One
// generation is in flight at a time; the session is not safe for
// concurrent use.
type Session struct {
	level     string
	generator quizgen.Generator
	eventRepo store.EventRepo
	rng       *rand.Rand
	sessionID string

	// poolFor is swapped in tests to run against a synthetic dataset.
	poolFor func(level string) []kanjidict.PoolEntry

	// Round is the current per-question state.
	Round Round

	// entry and taskType describe how the current question was produced.
	entry     kanjidict.PoolEntry
	taskType  quizgen.TaskType
	askedAt   time.Time
}

// NewSession creates a Session for the given level. eventRepo may be nil
// to run without answer logging; rng may be nil for a time-seeded source.
func NewSession(level string, gen quizgen.Generator, eventRepo store.EventRepo, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s := &Session{
		level:     level,
		generator: gen,
		eventRepo: eventRepo,
		rng:       rng,
		sessionID: uuid.New().String(),
		poolFor:   kanjidict.PoolForLevel,
	}
	s.Round.Reset()
	return s
}

// ID returns the session identifier used on answer events.
func (s *Session) ID() string { return s.sessionID }

// Level returns the level this session draws kanji from.
func (s *Session) Level() string { return s.level }

// Entry returns the pool entry behind the current question.
func (s *Session) Entry() kanjidict.PoolEntry { return s.entry }

// TaskType returns the archetype of the current question.
func (s *Session) TaskType() quizgen.TaskType { return s.taskType }

// Generate produces a new question, replacing any prior round state.
// The prior state is cleared first, so a failure leaves no stale
// question behind. Possible failures: kanjidict.ErrNoEligibleKanji
// (generator never called), quizgen.ErrGenerationFailed, *quizgen.ParseError.
func (s *Session) Generate(ctx context.Context) (*quizgen.Question, error) {
	s.Round.Reset()

	entry, err := kanjidict.PickOne(s.poolFor(s.level), s.rng)
	if err != nil {
		return nil, err
	}

	taskType := quizgen.PickTaskType(s.rng)

	q, err := s.generator.Generate(ctx, quizgen.GenerateInput{
		Kanji:    entry.Kanji,
		Level:    s.level,
		TaskType: taskType,
	})
	if err != nil {
		return nil, err
	}

	s.Round.Question = q
	s.entry = entry
	s.taskType = taskType
	s.askedAt = time.Now()
	return q, nil
}

// SelectChoice records the learner's pick and grades it by text equality
// against the question's answer. Rejected when no question is current or
// a result was already recorded.
func (s *Session) SelectChoice(ctx context.Context, idx int) (Result, error) {
	q := s.Round.Question
	if q == nil {
		return ResultNone, ErrNoQuestion
	}
	if s.Round.Result != ResultNone {
		return s.Round.Result, ErrAlreadyAnswered
	}
	if idx < 0 || idx >= len(q.Choices) {
		return ResultNone, fmt.Errorf("choice index %d out of range", idx)
	}

	s.Round.Selection = idx
	if q.Choices[idx] == q.Answer {
		s.Round.Result = ResultCorrect
	} else {
		s.Round.Result = ResultWrong
	}

	if s.eventRepo != nil {
		// Best effort: a lost event never fails the round.
		_ = s.eventRepo.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:     s.sessionID,
			Kanji:         q.Kanji,
			Level:         s.level,
			TaskType:      string(s.taskType),
			Prompt:        q.Prompt,
			CorrectAnswer: q.Answer,
			ChosenAnswer:  q.Choices[idx],
			Correct:       s.Round.Result == ResultCorrect,
			TimeMs:        int(time.Since(s.askedAt).Milliseconds()),
		})
	}

	return s.Round.Result, nil
}

// FailureMessage converts any generate failure into the user-visible
// message shown in place of a question. Nothing propagates as a fault.
func FailureMessage(err error) string {
	var perr *quizgen.ParseError
	switch {
	case errors.Is(err, kanjidict.ErrNoEligibleKanji):
		return "No kanji available for this level."
	case errors.Is(err, quizgen.ErrGenerationFailed):
		return "The generation backend did not return a question. Check that it is running."
	case errors.As(err, &perr):
		return "The generated text could not be turned into a question. Try again."
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}
