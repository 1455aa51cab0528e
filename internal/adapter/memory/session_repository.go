package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"adkit/internal/core/domain"
	"adkit/internal/core/session"
)

// SessionRepository implements port.SessionRepository in process memory.
// Sessions untouched for longer than idleTTL are dropped the next time a
// session is created; a zero idleTTL keeps sessions until deleted.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	idleTTL  time.Duration
	now      func() time.Time
}

type entry struct {
	store    *session.Store
	lastSeen time.Time
}

// NewSessionRepository returns an empty repository.
func NewSessionRepository(idleTTL time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]*entry),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Create registers a fresh session.
func (r *SessionRepository) Create(_ context.Context) (uuid.UUID, *session.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictLocked(now)

	id := uuid.New()
	st := session.NewStore()
	r.sessions[id] = &entry{store: st, lastSeen: now}
	return id, st, nil
}

// Get returns the session and marks it as used.
func (r *SessionRepository) Get(_ context.Context, id uuid.UUID) (*session.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	e.lastSeen = r.now()
	return e.store, nil
}

// Delete drops the session.
func (r *SessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionRepository) evictLocked(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for id, e := range r.sessions {
		// never evict a session with a generation in flight
		if now.Sub(e.lastSeen) > r.idleTTL && !e.store.Snapshot().Loading {
			delete(r.sessions, id)
		}
	}
}
