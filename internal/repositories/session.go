package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create() *models.Session
	FindByID(id uuid.UUID) (*models.Session, error)
	Delete(id uuid.UUID)
	Count() int
	DeleteExpired(ttl time.Duration) int
}

// sessionRepository keeps sessions in process memory only. Nothing outlives
// the server: a restart starts every client from a blank slate.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*models.Session),
	}
}

// Create implements SessionRepository.
func (r *sessionRepository) Create() *models.Session {
	session := models.NewSession()

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session
}

// FindByID implements SessionRepository.
func (r *sessionRepository) FindByID(id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete implements SessionRepository.
func (r *sessionRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Count implements SessionRepository.
func (r *sessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// DeleteExpired implements SessionRepository. A session expires when its
// last activity is older than ttl. Returns the number of sessions removed.
func (r *sessionRepository) DeleteExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
