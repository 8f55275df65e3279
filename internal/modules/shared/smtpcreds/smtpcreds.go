// Package smtpcreds resolves the SMTP credentials used by the email
// delivery simulator. The simulator never opens a real connection; it only
// requires that a credential source is resolvable before a send.
package smtpcreds

import (
	"context"
	"fmt"
	"sync"
)

// Credentials is an SMTP endpoint with its login.
type Credentials struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// Source resolves SMTP credentials on demand.
type Source interface {
	Credentials(ctx context.Context) (*Credentials, error)
}

// StaticSource serves a fixed credential set, for local development and
// tests without AWS Secrets Manager.
type StaticSource struct {
	creds *Credentials
	mu    sync.RWMutex
}

// NewStaticSource creates a static source. A nil creds argument yields the
// local mailhog-style default.
func NewStaticSource(creds *Credentials) *StaticSource {
	if creds == nil {
		creds = &Credentials{
			Host:     "localhost",
			Port:     1025,
			Username: "noreply@lnsc.ph",
			Password: "local-dev",
			From:     "LNSC <noreply@lnsc.ph>",
		}
	}
	return &StaticSource{creds: creds}
}

// Credentials implements Source.
func (s *StaticSource) Credentials(_ context.Context) (*Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds == nil {
		return nil, fmt.Errorf("no SMTP credentials configured")
	}
	out := *s.creds
	return &out, nil
}

// SetCredentials replaces the stored credential set.
func (s *StaticSource) SetCredentials(creds *Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
}
