package store

import (
	"context"
	"errors"

	"mockmate/interview/internal/models"
)

// ErrNotFound is returned by Get/Update/Delete for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Store owns all session state. Implementations must be safe for concurrent
// use across different sessions; serialization of operations against one
// session is the engine's job, not the store's.
type Store interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Session, error)
}
