package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"janggi/internal/janggi"
)

// Session is one tracked game plus its bookkeeping timestamps.
type Session struct {
	ID        string
	Game      *janggi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrNotFound = errors.New("session not found")

// Registry is an in-memory store of concurrent game sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// New creates a session holding a freshly set up game.
func (r *Registry) New() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Game:      janggi.NewGame(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.sessions[s.ID] = s
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Touch records activity on a session after a move was played on its game.
func (r *Registry) Touch(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
