package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryGenerations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "question-gen",
		OutputTokens: 42,
		LatencyMs:    120,
		Success:      true,
		Prompt:       "prompt",
		Output:       "output",
	}))
	require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "preview",
		Success:      false,
		ErrorMessage: "backend unavailable",
	}))

	events, err := repo.QueryGenerations(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "preview", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "question-gen", events[1].Purpose)
	assert.True(t, events[1].Success)
	assert.Equal(t, 42, events[1].OutputTokens)
	assert.False(t, events[1].Timestamp.IsZero())
}

func TestQueryGenerations_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		purpose := "question-gen"
		if i%2 == 1 {
			purpose = "preview"
		}
		require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		}))
	}

	byPurpose, err := repo.QueryGenerations(ctx, QueryOpts{Purpose: "preview"})
	require.NoError(t, err)
	assert.Len(t, byPurpose, 2)

	limited, err := repo.QueryGenerations(ctx, QueryOpts{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestAppendAnswer(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswer(ctx, AnswerEventData{
		SessionID:     "sess-1",
		Kanji:         "水",
		Level:         "5",
		TaskType:      "base-meaning",
		Prompt:        "Which meaning fits 水?",
		CorrectAnswer: "water",
		ChosenAnswer:  "fire",
		Correct:       false,
		TimeMs:        3200,
	}))

	var count int
	require.NoError(t, s.DB().QueryRow(
		"SELECT COUNT(*) FROM answer_events WHERE session_id = ?", "sess-1",
	).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestGetGeneration(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen",
		Success: true, Prompt: "p", Output: "o",
	}))

	events, err := repo.QueryGenerations(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e, err := repo.GetGeneration(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "p", e.Prompt)
	assert.Equal(t, "o", e.Output)

	missing, err := repo.GetGeneration(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAnswerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []struct {
		level   string
		correct bool
	}{
		{"5", true}, {"5", true}, {"5", false},
		{"3", false},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswer(ctx, AnswerEventData{
			SessionID: "sess-1", Kanji: "水", Level: a.level,
			TaskType: "base-meaning", Correct: a.correct,
		}))
	}

	stats, err := repo.AnswerStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Levels sort ascending, so N3 comes before N5.
	assert.Equal(t, LevelStats{Level: "3", Total: 1, Correct: 0}, stats[0])
	assert.Equal(t, LevelStats{Level: "5", Total: 3, Correct: 2}, stats[1])
	assert.InDelta(t, 2.0/3.0, stats[1].Accuracy(), 1e-9)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendGeneration(context.Background(),
		GenerationEventData{Provider: "mock", Model: "mock", Purpose: "x", Success: true}))
	require.NoError(t, s.Close())

	// Schema creation is idempotent and data survives reopening.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	events, err := s2.EventRepo().QueryGenerations(context.Background(), QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
