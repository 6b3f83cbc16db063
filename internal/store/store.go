package store

import (
	"context"
	"errors"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store owns every session. Implementations must serialize Advance calls for
// the same session so two concurrent answers cannot interleave.
type Store interface {
	// Create makes a new empty session and returns a copy of it.
	Create(ctx context.Context) (*interview.Session, error)

	// Get returns a copy of the session, or ErrNotFound.
	Get(ctx context.Context, id string) (*interview.Session, error)

	// Advance appends an answer/evaluation pair, increments the question
	// index, and returns a copy of the updated session. ErrNotFound if the
	// session does not exist.
	Advance(ctx context.Context, id string, answer string, eval interview.Evaluation) (*interview.Session, error)

	Close() error
}
