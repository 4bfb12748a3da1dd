package auth

import (
	"context"
	"fmt"
	"time"

	"yogasund/braincore"
	"yogasund/models"
	"yogasund/utils"

	"go.uber.org/zap"
)

// Login delegates credentials to braincore, mints a portal token bound to
// the braincore expiry, and persists the session.
func (s *DefaultAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	creds, err := s.Client.Login(ctx, req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("Login rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return s.establishSession(ctx, creds)
}

// Signup registers the member with braincore and signs them straight in.
func (s *DefaultAuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	creds, err := s.Client.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.establishSession(ctx, creds)
}

// CheckEmail reports whether an account exists for the wizard's
// login-or-register step.
func (s *DefaultAuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.Client.CheckEmail(ctx, email)
}

// Logout invalidates the session explicitly.
func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	return s.Store.Delete(ctx, utils.HashToken(token))
}

// InvalidateToken drops a session after a downstream braincore 401.
func (s *DefaultAuthService) InvalidateToken(ctx context.Context, token string) error {
	return s.Store.Delete(ctx, utils.HashToken(token))
}

// RefreshMember re-fetches the contact record from braincore and updates the
// cached copy, leaving token and expiry untouched.
func (s *DefaultAuthService) RefreshMember(ctx context.Context, token string) (*models.Member, error) {
	tokenHash := utils.HashToken(token)
	session, err := s.Store.Get(ctx, tokenHash)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	if session.Expired() {
		_ = s.Store.Delete(ctx, tokenHash)
		return nil, braincore.ErrUnauthorized
	}

	member, err := s.Client.GetMe(ctx, session.BraincoreToken)
	if err != nil {
		return nil, err
	}

	session.Member = *member
	if err := s.Store.Save(ctx, tokenHash, *session); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *DefaultAuthService) establishSession(ctx context.Context, creds *braincore.Credentials) (*models.AuthResponse, error) {
	duration := time.Until(creds.ExpiresAt)
	if duration <= 0 {
		return nil, fmt.Errorf("braincore issued an already expired token")
	}

	token, err := utils.GenerateToken(creds.Member.ContactID, creds.Member.Email, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := models.MemberSession{
		ContactID:      creds.Member.ContactID,
		BraincoreToken: creds.Token,
		ExpiresAt:      creds.ExpiresAt,
		Member:         creds.Member,
		CreatedAt:      time.Now(),
	}
	if err := s.Store.Save(ctx, utils.HashToken(token), session); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: creds.ExpiresAt,
		Member:    creds.Member,
	}, nil
}
