package port

import (
	"context"

	"github.com/google/uuid"

	"adkit/internal/core/session"
)

// SessionRepository keeps the live wizard sessions. Implementations must be
// safe for concurrent use; each session is owned by a single client.
type SessionRepository interface {
	// Create registers a fresh session and returns its id.
	Create(ctx context.Context) (uuid.UUID, *session.Store, error)
	// Get returns the session store, or domain.ErrSessionNotFound.
	Get(ctx context.Context, id uuid.UUID) (*session.Store, error)
	// Delete drops the session. Unknown ids are ignored.
	Delete(ctx context.Context, id uuid.UUID) error
}
