package braincore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchSessionsInRange(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"start_date":   r.URL.Query().Get("start_date"),
			"end_date":     r.URL.Query().Get("end_date"),
			"template_ids": r.URL.Query().Get("template_ids"),
			"contact_id":   r.URL.Query().Get("contact_id"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sessions":[
			{"id":"s1","template_id":"hatha","title":"Hatha","start_time":"2026-01-05T17:00:00Z","end_time":"2026-01-05T18:00:00Z","instructor":"Anna","available_spots":4,"capacity":12},
			{"id":"s2","template_id":"yin","title":"Yin","start_time":"2026-01-07T18:00:00Z","end_time":"2026-01-07T19:15:00Z","instructor":"Erik","available_spots":0,"capacity":10}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", srv.Client())
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	sessions, err := c.FetchSessionsInRange(context.Background(), []string{"hatha", "yin"}, start, end, "contact-42")
	if err != nil {
		t.Fatalf("FetchSessionsInRange() error = %v", err)
	}

	if gotPath != "/schedule" {
		t.Errorf("request path = %q, want %q", gotPath, "/schedule")
	}
	if gotQuery["start_date"] != "2026-01-05" || gotQuery["end_date"] != "2026-01-12" {
		t.Errorf("date range = %q..%q, want 2026-01-05..2026-01-12", gotQuery["start_date"], gotQuery["end_date"])
	}
	if gotQuery["template_ids"] != "hatha,yin" {
		t.Errorf("template_ids = %q, want %q", gotQuery["template_ids"], "hatha,yin")
	}
	if gotQuery["contact_id"] != "contact-42" {
		t.Errorf("contact_id = %q, want %q", gotQuery["contact_id"], "contact-42")
	}

	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].ID != "s1" || sessions[0].TemplateID != "hatha" {
		t.Errorf("first session = %+v, want id s1 template hatha", sessions[0])
	}
	if sessions[1].AvailableSpots != 0 {
		t.Errorf("second session spots = %d, want 0", sessions[1].AvailableSpots)
	}
}

func TestFetchSessionsInRangeAnonymous(t *testing.T) {
	var hasContactID bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasContactID = r.URL.Query().Has("contact_id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sessions":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", srv.Client())
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if _, err := c.FetchSessionsInRange(context.Background(), nil, start, start.AddDate(0, 0, 7), ""); err != nil {
		t.Fatalf("FetchSessionsInRange() error = %v", err)
	}
	if hasContactID {
		t.Error("anonymous fetch sent contact_id, want it omitted")
	}
}

func TestDoJSONErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantKey string
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":"invalid_credentials"}`,
			wantErr: ErrUnauthorized,
			wantKey: "errors.auth.invalidCredentials",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"error":"account_not_found"}`,
			wantErr: ErrNotFound,
			wantKey: "errors.auth.accountNotFound",
		},
		{
			name:    "conflict with known message",
			status:  http.StatusConflict,
			body:    `{"error":"session_full"}`,
			wantKey: "errors.booking.sessionFull",
		},
		{
			name:    "unknown message falls back to generic",
			status:  http.StatusInternalServerError,
			body:    `{"error":"database_on_fire"}`,
			wantKey: GenericErrorKey,
		},
		{
			name:    "message field instead of error field",
			status:  http.StatusPaymentRequired,
			body:    `{"message":"payment_declined"}`,
			wantKey: "errors.payment.declined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "", srv.Client())
			err := c.doJSON(context.Background(), "GET", "/anything", "", nil, nil)
			if err == nil {
				t.Fatal("doJSON() error = nil, want APIError")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("doJSON() error = %T, want *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false, want true", err, tt.wantErr)
			}
			if got := TranslationKey(err); got != tt.wantKey {
				t.Errorf("TranslationKey() = %q, want %q", got, tt.wantKey)
			}
		})
	}
}

func TestDoJSONNotConfigured(t *testing.T) {
	c := NewClient("", "", nil)
	err := c.doJSON(context.Background(), "GET", "/schedule", "", nil, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("doJSON() error = %v, want ErrNotConfigured", err)
	}
}

func TestDoJSONSendsAuthHeaders(t *testing.T) {
	var gotAPIKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-API-Key")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "portal-key", srv.Client())
	if err := c.doJSON(context.Background(), "GET", "/me", "member-token", nil, nil); err != nil {
		t.Fatalf("doJSON() error = %v", err)
	}
	if gotAPIKey != "portal-key" {
		t.Errorf("X-API-Key = %q, want %q", gotAPIKey, "portal-key")
	}
	if gotAuth != "Bearer member-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer member-token")
	}
}

func TestTranslationKeyNonAPIError(t *testing.T) {
	if got := TranslationKey(errors.New("dial tcp: connection refused")); got != GenericErrorKey {
		t.Errorf("TranslationKey() = %q, want %q", got, GenericErrorKey)
	}
}
