// Package store holds chat sessions and mirrors them to the snapshot
// store after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/chat/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const snapshotKey = "chat_sessions"

// ChatStore owns every chat session by ID.
type ChatStore struct {
	sessions map[string]*domain.Session
	storage  storage.Store
	logger   logger.Logger
	mu       sync.RWMutex
}

// NewChatStore creates a chat store and restores any persisted snapshot.
func NewChatStore(ctx context.Context, st storage.Store, log logger.Logger) *ChatStore {
	s := &ChatStore{
		sessions: make(map[string]*domain.Session),
		storage:  st,
		logger:   log,
	}
	s.restore(ctx)
	return s
}

// Insert stores a new session.
func (s *ChatStore) Insert(ctx context.Context, session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	s.persist(ctx)
}

// Mutate applies fn to the stored session under the write lock and
// persists the result. fn sees the live record.
func (s *ChatStore) Mutate(ctx context.Context, sessionID string, fn func(*domain.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if err := fn(session); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// Get returns a deep copy of the session.
func (s *ChatStore) Get(sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return copySession(session), nil
}

// Sessions returns deep copies of every session.
func (s *ChatStore) Sessions() []*domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, copySession(session))
	}
	return out
}

func copySession(session *domain.Session) *domain.Session {
	out := *session
	out.Messages = make([]*domain.Message, len(session.Messages))
	for i, m := range session.Messages {
		copied := *m
		out.Messages[i] = &copied
	}
	out.Tags = append([]string(nil), session.Tags...)
	return &out
}

func (s *ChatStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal chat sessions")
		return
	}
	if err := s.storage.Set(ctx, snapshotKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist chat sessions")
	}
}

func (s *ChatStore) restore(ctx context.Context) {
	data, err := s.storage.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("Failed to load chat sessions")
		}
		return
	}
	if err := json.Unmarshal(data, &s.sessions); err != nil {
		s.logger.Error().Err(err).Msg("Failed to decode chat sessions")
	}
}
