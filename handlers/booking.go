package handlers

import (
	"net/http"

	"yogasund/models"
	"yogasund/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingHandler books a single session. Members book on their
// braincore token; guests must supply contact details. Paid drop-ins go
// through the payment confirm endpoint instead.
func CreateBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		bearer := c.GetString("braincoreToken")
		if bearer == "" && req.Guest == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Guest details are required without a member session"})
			return
		}

		result, err := svc.CreateBooking(c.Request.Context(), bearer, req)
		if err != nil {
			logger.Warn("Booking failed", zap.String("sessionID", req.SessionID), zap.Error(err))
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// ListMemberBookingsHandler lists the member's upcoming bookings.
func ListMemberBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListMemberBookings(c.Request.Context(), c.GetString("braincoreToken"))
		if err != nil {
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// CancelBookingHandler cancels one of the member's bookings.
func CancelBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("bookingID")
		if err := svc.CancelBooking(c.Request.Context(), c.GetString("braincoreToken"), bookingID); err != nil {
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}
