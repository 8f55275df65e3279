// Package domain defines the simulated email pipeline entities: queued
// notifications, templates, and per-user delivery preferences.
package domain

import (
	"fmt"
	"time"
)

var (
	ErrNotificationNotFound = fmt.Errorf("notification not found")
	ErrInvalidType          = fmt.Errorf("invalid notification type")
	ErrNotResendable        = fmt.Errorf("only failed notifications can be resent")
	ErrNotCancellable       = fmt.Errorf("only scheduled notifications can be cancelled")
)

// Type categorizes a notification for the preference gate.
type Type string

const (
	TypeOrder     Type = "order"
	TypeReview    Type = "review"
	TypePromotion Type = "promotion"
	TypeSystem    Type = "system"
)

// Valid reports whether t is a known notification type.
func (t Type) Valid() bool {
	switch t {
	case TypeOrder, TypeReview, TypePromotion, TypeSystem:
		return true
	}
	return false
}

// Status is a notification's delivery state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusFailed    Status = "failed"
	StatusScheduled Status = "scheduled"
)

// Notification is one simulated email delivery record.
type Notification struct {
	ID           string         `json:"id"`
	To           string         `json:"to"`
	Subject      string         `json:"subject"`
	Template     string         `json:"template"`
	Variables    map[string]any `json:"variables"`
	Type         Type           `json:"type"`
	Status       Status         `json:"status"`
	ScheduledFor *time.Time     `json:"scheduledFor,omitempty"`
	SentAt       *time.Time     `json:"sentAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	RetryCount   int            `json:"retryCount"`
	Error        string         `json:"error,omitempty"`
}

// Due reports whether a scheduled notification is ready for dispatch.
func (n *Notification) Due(now time.Time) bool {
	return n.Status == StatusScheduled && n.ScheduledFor != nil && !n.ScheduledFor.After(now)
}
