package sessions

import (
	"context"
	"sync"
	"time"

	"atenda-service/internal/app/models"
)

type sessionEntry struct {
	session   models.Session
	expiresAt time.Time
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]sessionEntry),
	}
}

func (r *memorySessionRepository) Set(ctx context.Context, sessionID string, session *models.Session, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = sessionEntry{
		session:   *session,
		expiresAt: time.Now().Add(expiration),
	}
	return nil
}

func (r *memorySessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, bool) {
	r.mu.RLock()
	entry, ok := r.sessions[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		// Expired entries are collected lazily on read.
		r.mu.Lock()
		delete(r.sessions, sessionID)
		r.mu.Unlock()
		return nil, false
	}

	session := entry.session
	return &session, true
}

func (r *memorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
