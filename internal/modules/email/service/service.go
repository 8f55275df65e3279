// Package service implements the simulated email delivery pipeline:
// preference gating, probabilistic send outcomes, scheduling, and retries.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/google/uuid"
	"github.com/lnsc/storefront/internal/modules/email/domain"
	"github.com/lnsc/storefront/internal/modules/email/store"
	"github.com/lnsc/storefront/internal/modules/shared/smtpcreds"
)

const (
	sendErrorMessage  = "SMTP connection failed"
	retryErrorMessage = "Retry failed - invalid email address"
	credsErrorMessage = "SMTP credentials unavailable"
)

// Config tunes the delivery simulation.
type Config struct {
	// SendSuccessRate is the probability a first send lands.
	SendSuccessRate float64
	// ResendSuccessRate is the probability a retry lands.
	ResendSuccessRate float64
	// BulkIsolation records each bulk recipient's outcome independently.
	// When false, the first failure aborts the remaining sends.
	BulkIsolation bool
}

// DefaultConfig returns the production simulation rates.
func DefaultConfig() Config {
	return Config{
		SendSuccessRate:   0.9,
		ResendSuccessRate: 0.8,
		BulkIsolation:     true,
	}
}

// SendInput describes one outgoing notification.
type SendInput struct {
	To        string
	Subject   string
	Template  string
	Variables map[string]any
	Type      domain.Type
}

// BulkInput describes a promotional campaign fan-out.
type BulkInput struct {
	Recipients []string
	Subject    string
	Template   string
	Variables  map[string]any
}

// BulkResult summarizes a campaign run.
type BulkResult struct {
	Total   int      `json:"total"`
	Sent    int      `json:"sent"`
	Failed  int      `json:"failed"`
	Skipped []string `json:"skipped,omitempty"`
}

// EmailService coordinates the notification store, credential source, and
// delivery simulation.
type EmailService struct {
	store     *store.EmailStore
	creds     smtpcreds.Source
	templates []*domain.Template
	config    Config
	logger    logger.Logger
	rand      func() float64
	now       func() time.Time
}

// NewService creates an email service.
func NewService(s *store.EmailStore, creds smtpcreds.Source, cfg Config, l logger.Logger) *EmailService {
	return &EmailService{
		store:     s,
		creds:     creds,
		templates: domain.SeedTemplates(),
		config:    cfg,
		logger:    l,
		rand:      rand.Float64,
		now:       time.Now,
	}
}

// Send runs the full delivery path for an immediate notification. A send
// blocked by preferences is logged and leaves no record; the returned
// notification is nil in that case.
func (s *EmailService) Send(ctx context.Context, input SendInput) (*domain.Notification, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidType, input.Type)
	}

	if !s.store.Preferences().Allows(input.Type) {
		s.logger.Info().
			Str("type", string(input.Type)).
			Str("to", input.To).
			Msg("Email blocked by user preferences")
		return nil, nil
	}

	notification := s.newNotification(input)
	s.deliver(ctx, notification, s.config.SendSuccessRate)
	s.store.Insert(ctx, notification)

	s.logger.Info().
		Str("notificationID", notification.ID).
		Str("status", string(notification.Status)).
		Str("to", notification.To).
		Msg("Email send simulated")

	return notification, nil
}

// Schedule records a notification for later dispatch by the background
// job.
func (s *EmailService) Schedule(ctx context.Context, input SendInput, scheduledFor time.Time) (*domain.Notification, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidType, input.Type)
	}

	notification := s.newNotification(input)
	notification.Status = domain.StatusScheduled
	notification.ScheduledFor = &scheduledFor
	s.store.Insert(ctx, notification)

	s.logger.Info().
		Str("notificationID", notification.ID).
		Str("to", notification.To).
		Msg("Email scheduled")

	return notification, nil
}

// Resend retries a failed notification with the retry success rate. Any
// other status is rejected.
func (s *EmailService) Resend(ctx context.Context, id string) (*domain.Notification, error) {
	notification, err := s.store.ByID(id)
	if err != nil {
		return nil, err
	}
	if notification.Status != domain.StatusFailed {
		return nil, domain.ErrNotResendable
	}

	notification.RetryCount++
	if s.rand() < s.config.ResendSuccessRate {
		sentAt := s.now().UTC()
		notification.Status = domain.StatusSent
		notification.SentAt = &sentAt
		notification.Error = ""
	} else {
		notification.Status = domain.StatusFailed
		notification.Error = retryErrorMessage
	}

	if err := s.store.Update(ctx, notification); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("notificationID", notification.ID).
		Str("status", string(notification.Status)).
		Int("retryCount", notification.RetryCount).
		Msg("Email resend simulated")

	return notification, nil
}

// Cancel deletes a scheduled notification. No cancelled record is kept.
func (s *EmailService) Cancel(ctx context.Context, id string) error {
	notification, err := s.store.ByID(id)
	if err != nil {
		return err
	}
	if notification.Status != domain.StatusScheduled {
		return domain.ErrNotCancellable
	}
	return s.store.Delete(ctx, id)
}

// History returns the notifications addressed to a recipient, newest
// first.
func (s *EmailService) History(recipient string) []*domain.Notification {
	if recipient == "" {
		return s.store.All()
	}
	return s.store.History(recipient)
}

// Templates returns the built-in template set.
func (s *EmailService) Templates() []*domain.Template {
	return s.templates
}

// Preferences returns the current opt-in record.
func (s *EmailService) Preferences() *domain.Preferences {
	return s.store.Preferences()
}

// UpdatePreferences replaces the opt-in record, keeping the policy-locked
// flags on.
func (s *EmailService) UpdatePreferences(ctx context.Context, prefs *domain.Preferences) *domain.Preferences {
	return s.store.SetPreferences(ctx, prefs)
}

// SendBulkPromotion fans a promotional notification out to every
// recipient. Each outcome is recorded independently unless isolation is
// disabled, in which case the first failure aborts the rest.
func (s *EmailService) SendBulkPromotion(ctx context.Context, input BulkInput) (*BulkResult, error) {
	result := &BulkResult{Total: len(input.Recipients)}

	if !s.store.Preferences().Allows(domain.TypePromotion) {
		s.logger.Info().
			Int("recipients", len(input.Recipients)).
			Msg("Promotional campaign blocked by user preferences")
		result.Skipped = input.Recipients
		return result, nil
	}

	for i, recipient := range input.Recipients {
		notification := s.newNotification(SendInput{
			To:        recipient,
			Subject:   input.Subject,
			Template:  input.Template,
			Variables: input.Variables,
			Type:      domain.TypePromotion,
		})
		s.deliver(ctx, notification, s.config.SendSuccessRate)
		s.store.Insert(ctx, notification)

		if notification.Status == domain.StatusSent {
			result.Sent++
			continue
		}

		result.Failed++
		if !s.config.BulkIsolation {
			result.Skipped = input.Recipients[i+1:]
			s.logger.Warn().
				Str("recipient", recipient).
				Int("skipped", len(result.Skipped)).
				Msg("Campaign aborted on first failure")
			break
		}
	}

	return result, nil
}

// DispatchDue promotes every due scheduled notification through the
// delivery simulation. Notifications whose type is now blocked by
// preferences are dropped. Returns the number of records touched.
func (s *EmailService) DispatchDue(ctx context.Context) int {
	now := s.now().UTC()
	dispatched := 0

	for _, notification := range s.store.Scheduled() {
		if !notification.Due(now) {
			continue
		}

		if !s.store.Preferences().Allows(notification.Type) {
			s.logger.Info().
				Str("notificationID", notification.ID).
				Str("type", string(notification.Type)).
				Msg("Scheduled email dropped by user preferences")
			if err := s.store.Delete(ctx, notification.ID); err != nil {
				s.logger.Error().Err(err).Str("notificationID", notification.ID).Msg("Failed to drop blocked notification")
			}
			dispatched++
			continue
		}

		notification.ScheduledFor = nil
		s.deliver(ctx, notification, s.config.SendSuccessRate)
		if err := s.store.Update(ctx, notification); err != nil {
			s.logger.Error().Err(err).Str("notificationID", notification.ID).Msg("Failed to update dispatched notification")
			continue
		}

		s.logger.Info().
			Str("notificationID", notification.ID).
			Str("status", string(notification.Status)).
			Msg("Scheduled email dispatched")
		dispatched++
	}

	return dispatched
}

// deliver resolves the credential source and rolls the delivery outcome.
func (s *EmailService) deliver(ctx context.Context, n *domain.Notification, successRate float64) {
	if _, err := s.creds.Credentials(ctx); err != nil {
		s.logger.Error().Err(err).Msg("SMTP credential source unresolvable")
		n.Status = domain.StatusFailed
		n.Error = credsErrorMessage
		return
	}

	if s.rand() < successRate {
		sentAt := s.now().UTC()
		n.Status = domain.StatusSent
		n.SentAt = &sentAt
		n.Error = ""
	} else {
		n.Status = domain.StatusFailed
		n.Error = sendErrorMessage
	}
}

func (s *EmailService) newNotification(input SendInput) *domain.Notification {
	return &domain.Notification{
		ID:         uuid.NewString(),
		To:         input.To,
		Subject:    input.Subject,
		Template:   input.Template,
		Variables:  input.Variables,
		Type:       input.Type,
		Status:     domain.StatusPending,
		CreatedAt:  s.now().UTC(),
		RetryCount: 0,
	}
}
