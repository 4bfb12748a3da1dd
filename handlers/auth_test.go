package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yogasund/braincore"
	"yogasund/models"

	"github.com/gin-gonic/gin"
)

// stubAuthService fails every call with a fixed error.
type stubAuthService struct {
	err error
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return nil, s.err
}

func (s *stubAuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	return nil, s.err
}

func (s *stubAuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return false, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.err
}

func (s *stubAuthService) RefreshMember(ctx context.Context, token string) (*models.Member, error) {
	return nil, s.err
}

func (s *stubAuthService) InvalidateToken(ctx context.Context, token string) error {
	return nil
}

func invalidCredentialsErr() error {
	return &braincore.APIError{
		Status:  http.StatusUnauthorized,
		Message: "invalid_credentials",
		Err:     braincore.ErrUnauthorized,
	}
}

// A rejected login is a plain 401. Only 401s on session-scoped calls carry
// the sessionExpired marker that makes the frontend drop its state.
func TestLoginHandlerWrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", LoginHandler(&stubAuthService{err: invalidCredentialsErr()}))

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"member@example.se","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, present := body["sessionExpired"]; present {
		t.Errorf("login response carries sessionExpired, want plain 401: %v", body)
	}
	if got := body["messageKey"]; got != "errors.auth.invalidCredentials" {
		t.Errorf("messageKey = %v, want errors.auth.invalidCredentials", got)
	}
}

func TestMeHandlerStaleToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/auth/me", MeHandler(&stubAuthService{err: invalidCredentialsErr()}))

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["sessionExpired"] != true {
		t.Errorf("me response sessionExpired = %v, want true", body["sessionExpired"])
	}
}
