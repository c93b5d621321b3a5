package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// GenerationEventData captures one call to the generation backend.
type GenerationEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Prompt       string
	Output       string
}

// GenerationEvent is a stored generation event.
type GenerationEvent struct {
	ID        int64
	Timestamp time.Time
	GenerationEventData
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	SessionID     string
	Kanji         string
	Level         string
	TaskType      string
	Prompt        string
	CorrectAnswer string
	ChosenAnswer  string
	Correct       bool
	TimeMs        int
}

// LevelStats aggregates answer outcomes for one JLPT level.
type LevelStats struct {
	Level   string
	Total   int
	Correct int
}

// Accuracy returns the fraction of correct answers, 0 when no answers.
func (s LevelStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendGeneration records one generation backend call.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// AppendAnswer records one graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryGenerations returns stored generation events, newest first.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error)

	// GetGeneration returns one generation event by ID, nil if absent.
	GetGeneration(ctx context.Context, id int64) (*GenerationEvent, error)

	// AnswerStats aggregates answers per level, hardest level first.
	AnswerStats(ctx context.Context) ([]LevelStats, error)
}
