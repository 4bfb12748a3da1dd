package handlers

import (
	"net/http"

	"yogasund/config"
	"yogasund/models"
	"yogasund/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreatePaymentIntentHandler opens a Stripe PaymentIntent for a paid
// drop-in. The amount comes from the session's booking option on the
// server side; the client only names the session and option.
func CreatePaymentIntentHandler(svc booking.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.PaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		locale := c.Query("locale")
		if locale == "" {
			locale = config.AppConfig.DefaultLocale
		}

		resp, err := svc.CreateIntent(c.Request.Context(), req, c.GetString("contactID"), locale)
		if err != nil {
			logger.Warn("Failed to create payment intent", zap.String("sessionID", req.SessionID), zap.Error(err))
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ConfirmPaymentHandler verifies the PaymentIntent succeeded and creates
// the booking it paid for.
func ConfirmPaymentHandler(svc booking.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			IntentID string                `json:"intentId" binding:"required"`
			Booking  models.BookingRequest `json:"booking" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.ConfirmAndBook(c.Request.Context(), c.GetString("braincoreToken"), req.IntentID, req.Booking)
		if err != nil {
			logger.Warn("Payment confirmation failed", zap.String("intentID", req.IntentID), zap.Error(err))
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}
