package handlers

import (
	"net/http"

	"yogasund/models"
	"yogasund/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginHandler signs a member in against braincore and mints a portal token.
func LoginHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid login request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
			respondCredentialError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SignupHandler registers a new member and signs them in.
func SignupHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid signup request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Signup(c.Request.Context(), req)
		if err != nil {
			logger.Warn("Signup failed", zap.String("email", req.Email), zap.Error(err))
			respondCredentialError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// CheckEmailHandler reports whether an email already has a member account.
// The signup form uses it to steer returning members to login instead.
func CheckEmailHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		exists, err := svc.CheckEmail(c.Request.Context(), req.Email)
		if err != nil {
			respondCredentialError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"exists": exists})
	}
}

// LogoutHandler drops the member session.
func LogoutHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("portalToken")
		if err := svc.Logout(c.Request.Context(), token); err != nil {
			getLogger(c).Warn("Logout cleanup failed", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
	}
}

// MeHandler returns the signed-in member's profile, refreshed from
// braincore so membership changes show up without re-login.
func MeHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, err := svc.RefreshMember(c.Request.Context(), c.GetString("portalToken"))
		if err != nil {
			respondBraincoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, member)
	}
}
