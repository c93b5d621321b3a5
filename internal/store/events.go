package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo on the raw SQLite handle.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generation_events
			(timestamp, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, prompt, output)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
		data.Prompt,
		data.Output,
	)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(timestamp, session_id, kanji, level, task_type, prompt,
			 correct_answer, chosen_answer, correct, time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.SessionID,
		data.Kanji,
		data.Level,
		data.TaskType,
		data.Prompt,
		data.CorrectAnswer,
		data.ChosenAnswer,
		data.Correct,
		data.TimeMs,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error) {
	q := `SELECT id, timestamp, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error_message, prompt, output
		  FROM generation_events`
	var args []any
	if opts.Purpose != "" {
		q += " WHERE purpose = ?"
		args = append(args, opts.Purpose)
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer rows.Close()

	var events []GenerationEvent
	for rows.Next() {
		var e GenerationEvent
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
			&e.ErrorMessage, &e.Prompt, &e.Output); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339Nano, ts); perr == nil {
			e.Timestamp = t
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetGeneration(ctx context.Context, id int64) (*GenerationEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, timestamp, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error_message, prompt, output
		 FROM generation_events WHERE id = ?`, id)

	var e GenerationEvent
	var ts string
	err := row.Scan(&e.ID, &ts, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.Prompt, &e.Output)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get generation event: %w", err)
	}
	if t, perr := time.Parse(time.RFC3339Nano, ts); perr == nil {
		e.Timestamp = t
	}
	return &e, nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) ([]LevelStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT level, COUNT(*), SUM(correct)
		 FROM answer_events GROUP BY level ORDER BY level ASC`)
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var s LevelStats
		if err := rows.Scan(&s.Level, &s.Total, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan answer stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
