package models

import "time"

// Member is the cached braincore contact record for a signed-in member.
type Member struct {
	ContactID string `json:"contactId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Locale    string `json:"locale,omitempty"`
}

// MemberSession is the server-side session record, keyed in Redis by the
// hash of the portal token. It replaces the browser localStorage mirror the
// frontend used to keep.
type MemberSession struct {
	ContactID      string    `json:"contactId"`
	BraincoreToken string    `json:"braincoreToken"`
	ExpiresAt      time.Time `json:"expiresAt"`
	Member         Member    `json:"member"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Expired reports whether the underlying braincore token has lapsed.
// Expiry is checked before every use, never trusted from the client.
func (s MemberSession) Expired() bool {
	return !s.ExpiresAt.After(time.Now())
}

// LoginRequest carries member credentials, forwarded verbatim to braincore.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest registers a new member with braincore.
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone,omitempty"`
}

// AuthResponse is returned to the client after login or signup.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Member    Member    `json:"member"`
}
