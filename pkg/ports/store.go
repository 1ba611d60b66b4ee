package ports

import (
	"context"

	"github.com/aretw0/easel/pkg/domain"
)

// StateStore defines the interface for persisting session progress.
// Checkpoints are informational: nothing resumes a session from them.
type StateStore interface {
	// Save persists the progress for a given session ID.
	Save(ctx context.Context, sessionID string, progress *domain.Progress) error

	// Load retrieves the progress for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Progress, error)

	// Delete removes the progress for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
