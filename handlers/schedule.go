package handlers

import (
	"net/http"
	"time"

	"yogasund/config"
	"yogasund/services/booking"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// GetScheduleHandler returns the class schedule for a date range. Without
// query params it defaults to the coming week. Signed-in members get their
// own booking state reflected in the spots.
func GetScheduleHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now().Truncate(24 * time.Hour)
		if raw := c.Query("start"); raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
				return
			}
			start = parsed
		}

		end := start.AddDate(0, 0, 7)
		if raw := c.Query("end"); raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
				return
			}
			end = parsed
		}
		if !end.After(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
			return
		}

		sessions, err := svc.GetSchedule(c.Request.Context(), start, end, c.GetString("contactID"))
		if err != nil {
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions})
	}
}

// GetBookingOptionsHandler resolves eligibility and pricing for one session.
func GetBookingOptionsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		locale := c.Query("locale")
		if locale == "" {
			locale = config.AppConfig.DefaultLocale
		}

		options, err := svc.GetBookingOptions(c.Request.Context(), sessionID, c.GetString("contactID"), locale)
		if err != nil {
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"options": options})
	}
}
