// Package store holds accounts, the mock credential table, the active
// session, and order history, mirroring them to the snapshot store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/profile/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const (
	accountsKey = "user_accounts"
	ordersKey   = "orders"
)

// account pairs a user with its mock credential. Passwords stay inside
// the store and never reach API responses.
type account struct {
	User     *domain.User `json:"user"`
	Password string       `json:"password"`
}

type accountsSnapshot struct {
	Accounts      []*account `json:"accounts"`
	CurrentUserID string     `json:"currentUserId"`
}

// ProfileStore owns accounts and orders.
type ProfileStore struct {
	accounts      []*account
	currentUserID string
	orders        []*domain.Order
	storage       storage.Store
	logger        logger.Logger
	mu            sync.RWMutex
}

// NewProfileStore creates a profile store and restores persisted state.
func NewProfileStore(ctx context.Context, st storage.Store, log logger.Logger) *ProfileStore {
	s := &ProfileStore{
		storage: st,
		logger:  log,
	}
	s.restore(ctx)
	return s
}

// CreateAccount registers a new user with its credential. Emails are
// unique, compared case-insensitively.
func (s *ProfileStore) CreateAccount(ctx context.Context, user *domain.User, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if strings.EqualFold(acct.User.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	s.accounts = append(s.accounts, &account{User: user, Password: password})
	s.persistAccounts(ctx)
	return nil
}

// Authenticate returns the user matching the credential pair.
func (s *ProfileStore) Authenticate(email, password string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acct := range s.accounts {
		if strings.EqualFold(acct.User.Email, email) && acct.Password == password {
			return copyUser(acct.User), nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// SetCurrent records the active session.
func (s *ProfileStore) SetCurrent(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUserID = userID
	s.persistAccounts(ctx)
}

// ClearCurrent ends the active session.
func (s *ProfileStore) ClearCurrent(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUserID = ""
	s.persistAccounts(ctx)
}

// Current returns a copy of the logged-in user.
func (s *ProfileStore) Current() (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct := s.findLocked(s.currentUserID)
	if acct == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return copyUser(acct.User), nil
}

// Mutate applies fn to the stored user under the write lock and persists
// the result.
func (s *ProfileStore) Mutate(ctx context.Context, userID string, fn func(*domain.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.findLocked(userID)
	if acct == nil {
		return domain.ErrNotAuthenticated
	}
	if err := fn(acct.User); err != nil {
		return err
	}
	s.persistAccounts(ctx)
	return nil
}

// InsertOrder appends an order to the history.
func (s *ProfileStore) InsertOrder(ctx context.Context, order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	s.persistOrders(ctx)
}

// InsertOrders appends several orders at once.
func (s *ProfileStore) InsertOrders(ctx context.Context, orders []*domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, orders...)
	s.persistOrders(ctx)
}

// OrdersForUser returns the user's orders, newest first.
func (s *ProfileStore) OrdersForUser(userID string) []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Order, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, copyOrder(order))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out
}

// OrderForUser returns one order, scoped to its owner.
func (s *ProfileStore) OrderForUser(userID, orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.ID == orderID && order.UserID == userID {
			return copyOrder(order), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (s *ProfileStore) findLocked(userID string) *account {
	if userID == "" {
		return nil
	}
	for _, acct := range s.accounts {
		if acct.User.ID == userID {
			return acct
		}
	}
	return nil
}

func copyUser(u *domain.User) *domain.User {
	out := *u
	if u.Address != nil {
		addr := *u.Address
		out.Address = &addr
	}
	return &out
}

func copyOrder(o *domain.Order) *domain.Order {
	out := *o
	out.Items = make([]*domain.OrderItem, len(o.Items))
	for i, item := range o.Items {
		copied := *item
		out.Items[i] = &copied
	}
	return &out
}

func (s *ProfileStore) persistAccounts(ctx context.Context) {
	snap := accountsSnapshot{
		Accounts:      s.accounts,
		CurrentUserID: s.currentUserID,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal user accounts")
		return
	}
	if err := s.storage.Set(ctx, accountsKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist user accounts")
	}
}

func (s *ProfileStore) persistOrders(ctx context.Context) {
	data, err := json.Marshal(s.orders)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal orders")
		return
	}
	if err := s.storage.Set(ctx, ordersKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist orders")
	}
}

func (s *ProfileStore) restore(ctx context.Context) {
	if data, err := s.storage.Get(ctx, accountsKey); err == nil {
		var snap accountsSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			s.logger.Error().Err(err).Msg("Failed to decode user accounts")
		} else {
			s.accounts = snap.Accounts
			s.currentUserID = snap.CurrentUserID
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Error().Err(err).Msg("Failed to load user accounts")
	}

	if data, err := s.storage.Get(ctx, ordersKey); err == nil {
		if err := json.Unmarshal(data, &s.orders); err != nil {
			s.logger.Error().Err(err).Msg("Failed to decode orders")
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Error().Err(err).Msg("Failed to load orders")
	}
}
