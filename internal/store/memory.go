package store

import (
	"context"
	"sync"
	"time"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

// MemoryStore keeps sessions in process memory. This is the default store:
// session lifetime is bounded by the optional TTL, otherwise by the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*interview.Session

	ttl  time.Duration // 0 = sessions never expire
	done chan struct{}
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store. If ttl > 0, sessions idle longer
// than ttl are swept out by a background goroutine.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*interview.Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	if ttl > 0 {
		go s.sweep()
	}

	return s
}

func (s *MemoryStore) Create(ctx context.Context) (*interview.Session, error) {
	session := interview.NewSession()

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.Clone(), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*interview.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.expired(session) {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

// Advance mutates the session under the store lock, which serializes
// concurrent answers to the same session.
func (s *MemoryStore) Advance(ctx context.Context, id string, answer string, eval interview.Evaluation) (*interview.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || s.expired(session) {
		return nil, ErrNotFound
	}

	session.Advance(answer, eval)
	return session.Clone(), nil
}

// expired reports whether a session has outlived the TTL. Expiry is checked
// on access as well as by the sweeper, so an expired session is never handed
// out even between sweeps.
func (s *MemoryStore) expired(session *interview.Session) bool {
	return s.ttl > 0 && time.Since(session.UpdatedAt) > s.ttl
}

func (s *MemoryStore) Close() error {
	close(s.done)
	return nil
}

// sweep drops sessions that have been idle longer than the TTL.
func (s *MemoryStore) sweep() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, session := range s.sessions {
				if session.UpdatedAt.Before(cutoff) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
