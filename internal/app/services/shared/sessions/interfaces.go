package sessions

import (
	"context"
	"time"

	"atenda-service/internal/app/models"
)

// SessionRepository is the server-side session store. State is process-wide
// and lost on restart.
type SessionRepository interface {
	Set(ctx context.Context, sessionID string, session *models.Session, expiration time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.Session, bool)
	Delete(ctx context.Context, sessionID string) error
}
