package handlers

import (
	"net/http"
	"time"

	"yogasund/braincore"
	"yogasund/config"
	"yogasund/services/term"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListMembershipPlansHandler returns the purchasable membership catalog.
func ListMembershipPlansHandler(client *braincore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Query("locale")
		if locale == "" {
			locale = config.AppConfig.DefaultLocale
		}

		plans, err := client.ListMembershipPlans(c.Request.Context(), locale)
		if err != nil {
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"plans": plans})
	}
}

// StartTermSessionHandler opens a term booking wizard session. The response
// carries the wizard session id the client threads through the later steps,
// plus the first bookable week of sessions.
func StartTermSessionHandler(svc term.TermBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			PlanID     string `json:"planId" binding:"required"`
			TemplateID string `json:"templateId" binding:"required"`
			TermStart  string `json:"termStart" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		termStart, err := time.Parse(dateLayout, req.TermStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "termStart must be YYYY-MM-DD"})
			return
		}

		session, err := svc.StartSession(c.Request.Context(), req.PlanID, req.TemplateID, termStart, c.GetString("contactID"))
		if err != nil {
			logger.Warn("Failed to start term session", zap.String("planId", req.PlanID), zap.Error(err))
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// GetTermSessionHandler returns the wizard session state.
func GetTermSessionHandler(svc term.TermBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.GetSession(c.Request.Context(), c.Param("sessionID"))
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SelectWeekOneHandler records the member's first-week picks, extracts the
// weekly pattern from them, and projects it across the remaining weeks of
// the term. The response includes every projected week with its matches
// and any conflicts needing resolution.
func SelectWeekOneHandler(svc term.TermBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SessionIDs []string `json:"sessionIds" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.SelectWeekOne(c.Request.Context(), c.Param("sessionID"), req.SessionIDs)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// ResolveConflictHandler applies the member's pick for one conflicted slot.
func ResolveConflictHandler(svc term.TermBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			WeekIndex     int    `json:"weekIndex"`
			SessionID     string `json:"sessionId" binding:"required"`
			ConflictIndex int    `json:"conflictIndex"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.ResolveConflict(c.Request.Context(), c.Param("sessionID"), req.WeekIndex, req.SessionID, req.ConflictIndex)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// TermCheckoutHandler submits the assembled term reservation to braincore.
// It requires a signed-in member and refuses while conflicts remain open.
func TermCheckoutHandler(svc term.TermBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		result, err := svc.Checkout(c.Request.Context(), c.Param("sessionID"), c.GetString("braincoreToken"))
		if err != nil {
			logger.Warn("Term checkout failed", zap.String("sessionID", c.Param("sessionID")), zap.Error(err))
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// CancelTermSessionHandler abandons a wizard session.
func CancelTermSessionHandler(svc term.TermBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}
