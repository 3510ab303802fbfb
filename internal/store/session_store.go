package store

import (
	"context"
	"errors"
	"log-explorer-backend/internal/logindex"
	"log-explorer-backend/internal/model"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one loaded log file: its parsed entries and their index.
type Session struct {
	ID        string
	FileName  string
	LoadedAt  time.Time
	Workspace *logindex.Workspace

	mu         sync.Mutex
	lastAccess time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// Entries returns the versioned entry list the session's index was built from.
func (s *Session) Entries() logindex.EntryList {
	return s.Workspace.Entries()
}

type SessionStore interface {
	CreateSession(ctx context.Context, fileName string, entries []model.LogEntry) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	EvictIdle(ctx context.Context, maxIdle time.Duration) int
	Count() int
}

type inMemorySessionStore struct {
	store map[string]*Session // map[sessionId]*Session
	mu    sync.RWMutex
	now   func() time.Time
}

func NewInMemorySessionStore() SessionStore {
	return &inMemorySessionStore{
		store: make(map[string]*Session),
		now:   time.Now,
	}
}

func (s *inMemorySessionStore) CreateSession(ctx context.Context, fileName string, entries []model.LogEntry) (*Session, error) {
	ws := logindex.NewWorkspace()
	ws.Load(entries)

	now := s.now()
	session := &Session{
		ID:         uuid.NewString(),
		FileName:   fileName,
		LoadedAt:   now,
		Workspace:  ws,
		lastAccess: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[session.ID] = session
	log.Info().Str("session_id", session.ID).Str("file", fileName).Int("entries", len(entries)).Msg("Created log session")
	return session, nil
}

func (s *inMemorySessionStore) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.store[sessionID]; ok {
		session.touch(s.now())
		return session, nil
	}
	return nil, ErrSessionNotFound
}

func (s *inMemorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.store[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.store, sessionID)
	log.Info().Str("session_id", sessionID).Msg("Deleted log session")
	return nil
}

// EvictIdle drops every session not accessed within maxIdle and returns how
// many were removed.
func (s *inMemorySessionStore) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, session := range s.store {
		if session.LastAccess().Before(cutoff) {
			delete(s.store, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Info().Int("evicted", evicted).Int("remaining", len(s.store)).Msg("Evicted idle log sessions")
	}
	return evicted
}

func (s *inMemorySessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}
