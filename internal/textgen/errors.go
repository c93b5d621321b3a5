package textgen

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the backend returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrEmptyCompletion indicates the backend answered but produced no text.
type ErrEmptyCompletion struct {
	Err error
}

func (e *ErrEmptyCompletion) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend returned no text: %v", e.Err)
	}
	return "backend returned no text"
}

func (e *ErrEmptyCompletion) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the backend is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation backend unavailable: %v", e.Err)
	}
	return "generation backend unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
