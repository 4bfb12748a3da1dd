package braincore

import (
	"context"
	"fmt"
	"time"

	"yogasund/models"
)

type wireContact struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Locale    string `json:"locale"`
}

func (w wireContact) toModel() models.Member {
	return models.Member{
		ContactID: w.ID,
		Email:     w.Email,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Phone:     w.Phone,
		Locale:    w.Locale,
	}
}

// Credentials is the result of a successful braincore auth call: the bearer
// token the portal uses on the member's behalf, its expiry, and the contact.
type Credentials struct {
	Token     string
	ExpiresAt time.Time
	Member    models.Member
}

type authResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Contact   wireContact `json:"contact"`
}

// Login exchanges member credentials for a braincore bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.doJSON(ctx, "POST", "/auth/login", "", body, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &Credentials{Token: resp.Token, ExpiresAt: resp.ExpiresAt, Member: resp.Contact.toModel()}, nil
}

// Signup registers a new member and signs them in.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*Credentials, error) {
	body := map[string]string{
		"email":      req.Email,
		"password":   req.Password,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
	}
	var resp authResponse
	if err := c.doJSON(ctx, "POST", "/auth/signup", "", body, &resp); err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	return &Credentials{Token: resp.Token, ExpiresAt: resp.ExpiresAt, Member: resp.Contact.toModel()}, nil
}

// CheckEmail reports whether an account already exists, so the wizard can
// route the member to login instead of registration.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	body := map[string]string{"email": email}
	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := c.doJSON(ctx, "POST", "/auth/check-email", "", body, &resp); err != nil {
		return false, fmt.Errorf("email check failed: %w", err)
	}
	return resp.Exists, nil
}

// GetMe refreshes the cached member record using the braincore token.
func (c *Client) GetMe(ctx context.Context, bearer string) (*models.Member, error) {
	var resp struct {
		Contact wireContact `json:"contact"`
	}
	if err := c.doJSON(ctx, "GET", "/me", bearer, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch member profile: %w", err)
	}
	member := resp.Contact.toModel()
	return &member, nil
}
