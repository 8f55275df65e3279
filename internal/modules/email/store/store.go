// Package store holds the notification history and delivery preferences,
// mirrored to the snapshot store after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/email/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const (
	notificationsKey = "email_notifications"
	preferencesKey   = "email_preferences"
)

// EmailStore owns the notification list (newest first) and the preference
// record.
type EmailStore struct {
	notifications []*domain.Notification
	preferences   *domain.Preferences
	storage       storage.Store
	logger        logger.Logger
	mu            sync.RWMutex
}

// NewEmailStore creates an email store, restoring persisted state or
// starting with default preferences and an empty history.
func NewEmailStore(ctx context.Context, st storage.Store, log logger.Logger) *EmailStore {
	s := &EmailStore{
		preferences: domain.DefaultPreferences(),
		storage:     st,
		logger:      log,
	}
	s.restore(ctx)
	return s
}

// Insert prepends a notification so the list stays newest first.
func (s *EmailStore) Insert(ctx context.Context, n *domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append([]*domain.Notification{n}, s.notifications...)
	s.persistNotifications(ctx)
}

// Update replaces the stored notification with the same ID.
func (s *EmailStore) Update(ctx context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.notifications {
		if existing.ID == n.ID {
			s.notifications[i] = n
			s.persistNotifications(ctx)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

// Delete removes a notification record entirely.
func (s *EmailStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			s.persistNotifications(ctx)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

// ByID returns a copy of the notification with the given ID.
func (s *EmailStore) ByID(id string) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications {
		if n.ID == id {
			out := *n
			return &out, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

// All returns every notification, newest first.
func (s *EmailStore) All() []*domain.Notification {
	return s.filter(func(*domain.Notification) bool { return true })
}

// History returns the notifications addressed to a recipient.
func (s *EmailStore) History(recipient string) []*domain.Notification {
	return s.filter(func(n *domain.Notification) bool {
		return strings.Contains(n.To, recipient)
	})
}

// Scheduled returns the notifications still waiting for dispatch.
func (s *EmailStore) Scheduled() []*domain.Notification {
	return s.filter(func(n *domain.Notification) bool {
		return n.Status == domain.StatusScheduled
	})
}

// Preferences returns a copy of the current preference record.
func (s *EmailStore) Preferences() *domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := *s.preferences
	return &out
}

// SetPreferences replaces the preference record. The policy-locked flags
// are re-asserted regardless of the incoming values.
func (s *EmailStore) SetPreferences(ctx context.Context, prefs *domain.Preferences) *domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := *prefs
	updated.EnforcePolicy()
	s.preferences = &updated
	s.persistPreferences(ctx)

	out := updated
	return &out
}

func (s *EmailStore) filter(keep func(*domain.Notification) bool) []*domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Notification
	for _, n := range s.notifications {
		if keep(n) {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out
}

func (s *EmailStore) persistNotifications(ctx context.Context) {
	data, err := json.Marshal(s.notifications)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal notification history")
		return
	}
	if err := s.storage.Set(ctx, notificationsKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist notification history")
	}
}

func (s *EmailStore) persistPreferences(ctx context.Context) {
	data, err := json.Marshal(s.preferences)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal email preferences")
		return
	}
	if err := s.storage.Set(ctx, preferencesKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist email preferences")
	}
}

func (s *EmailStore) restore(ctx context.Context) {
	if data, err := s.storage.Get(ctx, notificationsKey); err == nil {
		if err := json.Unmarshal(data, &s.notifications); err != nil {
			s.logger.Error().Err(err).Msg("Failed to decode notification history")
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Error().Err(err).Msg("Failed to load notification history")
	}

	if data, err := s.storage.Get(ctx, preferencesKey); err == nil {
		var prefs domain.Preferences
		if err := json.Unmarshal(data, &prefs); err != nil {
			s.logger.Error().Err(err).Msg("Failed to decode email preferences")
		} else {
			prefs.EnforcePolicy()
			s.preferences = &prefs
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Error().Err(err).Msg("Failed to load email preferences")
	}
}
