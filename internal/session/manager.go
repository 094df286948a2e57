// Package session provides per-user isolation of consultation state.
// Each session owns its own consultation state, cached assessment and
// progress log; nothing is shared between sessions and nothing is
// persisted beyond the in-memory store.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/domain"
)

// Session holds everything owned by one consultation session.
type Session struct {
	ID         string                    `json:"id"`
	State      *domain.ConsultationState `json:"state"`
	Assessment *domain.AssessmentResult  `json:"assessment,omitempty"`
	Progress   *domain.ProgressLog       `json:"progress"`
	CreatedAt  time.Time                 `json:"created_at"`

	mu sync.Mutex
}

// Lock acquires the session's mutex. The single logical session model is
// synchronous, but the HTTP layer may deliver overlapping requests for
// the same session ID; the lock serializes them.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's mutex.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Manager is the in-memory session store: a bounded LRU with TTL
// eviction, keyed by generated session IDs.
type Manager struct {
	logger *logrus.Logger
	cache  *expirable.LRU[string, *Session]
}

// NewManager creates a session manager holding at most maxSessions
// sessions, each evicted after ttl of inactivity-free lifetime.
func NewManager(logger *logrus.Logger, maxSessions int, ttl time.Duration) *Manager {
	if maxSessions <= 0 {
		maxSessions = 1000
	}
	m := &Manager{logger: logger}
	m.cache = expirable.NewLRU[string, *Session](maxSessions, func(id string, _ *Session) {
		logger.WithField("session_id", id).Debug("Session evicted")
	}, ttl)
	return m
}

// Create starts a new session with a fresh consultation state.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		State:     domain.NewConsultationState(),
		Progress:  &domain.ProgressLog{},
		CreatedAt: time.Now().UTC(),
	}
	m.cache.Add(s.ID, s)

	m.logger.WithField("session_id", s.ID).Info("Created consultation session")
	return s
}

// Get returns the session for id, or false when it never existed or has
// been evicted.
func (m *Manager) Get(id string) (*Session, bool) {
	return m.cache.Get(id)
}

// Delete removes a session from the store.
func (m *Manager) Delete(id string) {
	m.cache.Remove(id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.cache.Len()
}
