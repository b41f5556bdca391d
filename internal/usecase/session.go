package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/engine"
	"github.com/flight-search/flight-result-engine/internal/infrastructure/timeutil"
)

// Session is one user's search context. Each session owns its own result
// store so concurrent users never see each other's filters.
type Session struct {
	ID        string
	Store     *engine.ResultStore
	CreatedAt time.Time

	mu         sync.Mutex
	lastAccess time.Time
	metadata   domain.SearchMetadata
}

// Metadata returns the metadata of the last search run in the session.
func (s *Session) Metadata() domain.SearchMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	md := s.metadata
	md.SourcesQueried = append([]string(nil), md.SourcesQueried...)
	md.SourcesFailed = append([]string(nil), md.SourcesFailed...)
	return md
}

func (s *Session) setMetadata(md domain.SearchMetadata) {
	s.mu.Lock()
	s.metadata = md
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

// LastAccess returns the last time the session was used.
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// SessionManager keeps the live sessions of the service in memory.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	clock    timeutil.Clock
	logger   zerolog.Logger
}

// NewSessionManager creates an empty session manager.
// If clock is nil the real clock is used.
func NewSessionManager(clock timeutil.Clock, logger zerolog.Logger) *SessionManager {
	if clock == nil {
		clock = timeutil.Real
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		clock:    clock,
		logger:   logger.With().Str("component", "sessions").Logger(),
	}
}

// Create starts a new session with an empty result store.
func (m *SessionManager) Create() *Session {
	now := m.clock.Now()
	s := &Session{
		ID:         uuid.NewString(),
		Store:      engine.NewResultStore(),
		CreatedAt:  now,
		lastAccess: now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", s.ID).Msg("session created")
	return s
}

// Get returns the session with the given id and marks it as used.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.touch(m.clock.Now())
	return s, nil
}

// Delete clears the session's search and forgets it.
func (m *SessionManager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.Store.ClearSearch()
	m.logger.Debug().Str("session_id", id).Msg("session deleted")
	return nil
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EvictIdle drops every session not used for longer than ttl and returns
// how many were dropped.
func (m *SessionManager) EvictIdle(ttl time.Duration) int {
	cutoff := m.clock.Now().Add(-ttl)

	m.mu.Lock()
	var evicted []*Session
	for id, s := range m.sessions {
		if s.LastAccess().Before(cutoff) {
			evicted = append(evicted, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range evicted {
		s.Store.ClearSearch()
	}
	if len(evicted) > 0 {
		m.logger.Info().Int("evicted", len(evicted)).Dur("ttl", ttl).Msg("idle sessions evicted")
	}
	return len(evicted)
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *SessionManager) Run(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.EvictIdle(ttl)
		}
	}
}
