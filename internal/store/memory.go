// internal/store/memory.go
//
// Board session persistence.
// A Session is the grid a user is filling in: the server keeps the latest
// board snapshot and recomputes hints from it on demand.
//
// Implementations:
//   - memory (this file): map keyed by ID behind an RWMutex; state is lost
//     when the process restarts. Used in development and tests.
//   - sqlStore (sql.go): SQLite table "boards".
//
// Sessions are copied on the way in and out so callers never share a
// board with the store.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/hint-server/internal/hint"
)

// ErrNotFound is returned when no session has the requested ID.
var ErrNotFound = errors.New("not found")

// Session is a saved board owned by a user or by nobody (guest).
type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId,omitempty"`
	Board     hint.Board `json:"board"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewSession returns an empty session with a fresh ID.
func NewSession(userID string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Board:     hint.Board{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) clone() *Session {
	c := *s
	c.Board = append(hint.Board{}, s.Board...)
	return &c
}

// Store defines the persistence interface for board sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// ListByUser returns a user's sessions, most recently updated first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.clone()
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.clone(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) ListByUser(ctx context.Context, userID string, limit int) ([]*Session, error) {
	m.mu.RLock()
	out := []*Session{}
	for _, s := range m.sessions {
		if userID != "" && s.UserID == userID {
			out = append(out, s.clone())
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
