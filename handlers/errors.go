package handlers

import (
	"errors"
	"net/http"

	"yogasund/braincore"
	"yogasund/services/auth"
	"yogasund/services/term"
	"yogasund/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionInvalidator drops a member session whose braincore token turned
// out to be stale. Set once from main.
var sessionInvalidator auth.AuthService

// SetSessionInvalidator installs the auth service used to clean up
// sessions behind downstream 401 responses.
func SetSessionInvalidator(svc auth.AuthService) {
	sessionInvalidator = svc
}

// respondBraincoreError translates an upstream failure into the portal's
// error shape: HTTP status plus a translation key the frontend resolves.
//
// A 401 from braincore on a member-scoped call means the stored token
// lapsed server-side. The session is invalidated and the response carries
// sessionExpired so the client returns to the login prompt instead of
// retrying.
func respondBraincoreError(c *gin.Context, err error) {
	logger := getLogger(c)

	if errors.Is(err, braincore.ErrUnauthorized) {
		if token := c.GetString("portalToken"); token != "" && sessionInvalidator != nil {
			if invErr := sessionInvalidator.InvalidateToken(c.Request.Context(), token); invErr != nil {
				logger.Warn("Failed to invalidate stale session", zap.Error(invErr))
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":          "Session expired",
			"messageKey":     braincore.TranslationKey(err),
			"sessionExpired": true,
		})
		return
	}

	var apiErr *braincore.APIError
	switch {
	case errors.Is(err, braincore.ErrNotFound):
		utils.JSONErrorKey(c, http.StatusNotFound, "Not found", braincore.TranslationKey(err))
	case errors.Is(err, braincore.ErrNotConfigured):
		utils.JSONErrorKey(c, http.StatusServiceUnavailable, "Booking backend unavailable", braincore.GenericErrorKey)
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		utils.JSONErrorKey(c, status, apiErr.Message, braincore.TranslationKey(err))
	default:
		logger.Error("Upstream request failed", zap.Error(err))
		utils.JSONErrorKey(c, http.StatusBadGateway, "Upstream request failed", braincore.GenericErrorKey)
	}
}

// respondCredentialError is respondBraincoreError for the credential
// endpoints. A 401 there means the submitted credentials were rejected, not
// that a stored session lapsed, so the response is a plain 401 without the
// sessionExpired marker and nothing is invalidated.
func respondCredentialError(c *gin.Context, err error) {
	if errors.Is(err, braincore.ErrUnauthorized) {
		utils.JSONErrorKey(c, http.StatusUnauthorized, "Invalid credentials", braincore.TranslationKey(err))
		return
	}
	respondBraincoreError(c, err)
}

// respondWizardError maps term wizard state errors onto HTTP statuses.
func respondWizardError(c *gin.Context, err error) {
	var wizErr *term.WizardError
	if !errors.As(err, &wizErr) {
		respondBraincoreError(c, err)
		return
	}

	status := http.StatusConflict
	switch wizErr {
	case term.ErrSessionNotFound:
		status = http.StatusNotFound
	case term.ErrWrongSelectionCount, term.ErrInvalidWeek:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": wizErr.Message, "code": wizErr.Code})
}
