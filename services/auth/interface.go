package auth

import (
	"context"

	"yogasund/braincore"
	"yogasund/models"
)

// SessionStore persists member sessions between requests. It replaces the
// old module-level token singleton with an explicit, injectable provider:
// sessions are initialized from persisted storage, refreshed on demand and
// invalidated explicitly.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, session models.MemberSession) error
	Get(ctx context.Context, tokenHash string) (*models.MemberSession, error)
	Delete(ctx context.Context, tokenHash string) error
}

// AuthService handles the credential flows, all delegated to braincore.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
	Logout(ctx context.Context, token string) error
	RefreshMember(ctx context.Context, token string) (*models.Member, error)
	// InvalidateToken drops the session for a token whose braincore
	// credentials turned out to be stale (a downstream 401).
	InvalidateToken(ctx context.Context, token string) error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Client *braincore.Client
	Store  SessionStore
}
