// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    current_index INTEGER NOT NULL,
    answers TEXT NOT NULL,
    evaluations TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteStore persists sessions in SQLite. Used when a durable store is
// configured; the default deployment runs on MemoryStore.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex // serializes Advance read-modify-write cycles
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (and if needed creates) the database at dbPath.
// Pass ":memory:" for an ephemeral database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Create(ctx context.Context) (*interview.Session, error) {
	session := interview.NewSession()

	answers, evals, err := encodeLists(session)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, current_index, answers, evaluations, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID, session.CurrentIndex, answers, evals,
		session.CreatedAt.Format(time.RFC3339Nano),
		session.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return session, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*interview.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, current_index, answers, evaluations, created_at, updated_at
		 FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

func (s *SQLiteStore) Advance(ctx context.Context, id string, answer string, eval interview.Evaluation) (*interview.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT id, current_index, answers, evaluations, created_at, updated_at
		 FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if err != nil {
		return nil, err
	}

	session.Advance(answer, eval)

	answers, evals, err := encodeLists(session)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE sessions SET current_index = ?, answers = ?, evaluations = ?, updated_at = ?
		 WHERE id = ?`,
		session.CurrentIndex, answers, evals,
		session.UpdatedAt.Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return session, nil
}

// ============================================================================
// Row mapping
// ============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*interview.Session, error) {
	var (
		session              interview.Session
		answers, evals       string
		createdAt, updatedAt string
	)

	err := row.Scan(&session.ID, &session.CurrentIndex, &answers, &evals, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(answers), &session.Answers); err != nil {
		return nil, fmt.Errorf("corrupt answers column: %w", err)
	}
	if err := json.Unmarshal([]byte(evals), &session.Evaluations); err != nil {
		return nil, fmt.Errorf("corrupt evaluations column: %w", err)
	}
	if session.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("corrupt created_at column: %w", err)
	}
	if session.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("corrupt updated_at column: %w", err)
	}

	return &session, nil
}

func encodeLists(session *interview.Session) (answers, evals string, err error) {
	a, err := json.Marshal(session.Answers)
	if err != nil {
		return "", "", err
	}
	e, err := json.Marshal(session.Evaluations)
	if err != nil {
		return "", "", err
	}
	return string(a), string(e), nil
}
