package braincore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means no braincore base URL was set.
	ErrNotConfigured = errors.New("braincore base URL not configured")
	// ErrUnauthorized maps 401 responses. Any non-auth endpoint returning
	// this invalidates the member session (sessionExpired semantics).
	ErrUnauthorized = errors.New("braincore rejected credentials")
	// ErrNotFound maps 404 responses.
	ErrNotFound = errors.New("braincore resource not found")
)

// APIError carries a non-2xx braincore response. Message is the backend's
// raw error string, used only as a lookup key for translation.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("braincore returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("braincore returned %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// messageKeys maps recognized backend error strings to stable translation
// keys the frontend localizes. The taxonomy is deliberately shallow; anything
// unrecognized falls back to the generic key.
var messageKeys = map[string]string{
	"email_already_registered":  "errors.auth.emailExists",
	"invalid_credentials":       "errors.auth.invalidCredentials",
	"account_not_found":         "errors.auth.accountNotFound",
	"session_full":              "errors.booking.sessionFull",
	"already_booked":            "errors.booking.alreadyBooked",
	"booking_window_closed":     "errors.booking.windowClosed",
	"insufficient_credits":      "errors.booking.insufficientCredits",
	"term_not_available":        "errors.term.notAvailable",
	"term_already_started":      "errors.term.alreadyStarted",
	"reservation_expired":       "errors.term.reservationExpired",
	"payment_declined":          "errors.payment.declined",
	"payment_intent_not_found":  "errors.payment.intentNotFound",
}

// GenericErrorKey is the fallback translation key for unrecognized failures.
const GenericErrorKey = "errors.generic"

// TranslationKey resolves an error to the localized message key shown to the
// member. Non-braincore errors always resolve to the generic key.
func TranslationKey(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if key, ok := messageKeys[apiErr.Message]; ok {
			return key
		}
	}
	return GenericErrorKey
}
