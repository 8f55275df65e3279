// Package domain defines the account, order, and checkout entities.
package domain

import (
	"errors"
	"time"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("no user logged in")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
)

// Address is a Philippine shipping address.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Province string `json:"province"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// NotificationPrefs are the account-level contact toggles. They are
// independent of the email module's per-category preferences.
type NotificationPrefs struct {
	Newsletter         bool `json:"newsletter"`
	SMSNotifications   bool `json:"smsNotifications"`
	EmailNotifications bool `json:"emailNotifications"`
}

// User is a registered customer account. Credentials live in the store's
// credential table, never on the user record.
type User struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Phone       string            `json:"phone,omitempty"`
	DateOfBirth string            `json:"dateOfBirth,omitempty"`
	Address     *Address          `json:"address,omitempty"`
	Preferences NotificationPrefs `json:"preferences"`
	CreatedAt   time.Time         `json:"createdAt"`
	LastLogin   time.Time         `json:"lastLogin"`
}

// DefaultPreferences opts new accounts into every channel.
func DefaultPreferences() NotificationPrefs {
	return NotificationPrefs{
		Newsletter:         true,
		SMSNotifications:   true,
		EmailNotifications: true,
	}
}
