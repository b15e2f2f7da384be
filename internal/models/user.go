package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired    = errors.New("an email address must be set")
	ErrPasswordRequired = errors.New("a password must be set")
)

// User is an account that can sign in to the household.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"asha@example.com"` // Sign-in email, unique
	PasswordHash string `json:"-"`                                                   // bcrypt hash of the password
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Email == "" {
		return ErrEmailRequired
	}

	return nil
}

// Session is a bearer token issued on sign-in. Tokens are opaque and
// checked against this table on every API-prefixed request.
type Session struct {
	Token     string    `json:"-" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"-" gorm:"index"`
	ExpiresAt time.Time `json:"-"`
}

// Expired reports whether the session is past its lifetime.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
