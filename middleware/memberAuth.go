package middleware

import (
	"net/http"
	"strings"

	"yogasund/services/auth"
	"yogasund/utils"

	"github.com/gin-gonic/gin"
)

// MemberAuthMiddleware validates the portal token and loads the member
// session from Redis. With optional set, unauthenticated requests pass
// through without member context instead of being rejected.
//
// Session expiry is checked on every request, never trusted from the
// client. A lapsed braincore token drops the stored session so the next
// attempt forces a fresh login.
func MemberAuthMiddleware(store auth.SessionStore, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c, false)
			return
		}

		if _, err := utils.ValidateToken(token); err != nil {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c, false)
			return
		}

		tokenHash := utils.HashToken(token)
		session, err := store.Get(c.Request.Context(), tokenHash)
		if err != nil || session == nil {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c, true)
			return
		}
		if session.Expired() {
			store.Delete(c.Request.Context(), tokenHash)
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c, true)
			return
		}

		c.Set("portalToken", token)
		c.Set("contactID", session.ContactID)
		c.Set("braincoreToken", session.BraincoreToken)
		c.Set("member", session.Member)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// abortUnauthorized replies 401. sessionExpired tells the frontend to clear
// its copy of the session and show the login prompt again.
func abortUnauthorized(c *gin.Context, sessionExpired bool) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":          "Insufficient authorization",
		"sessionExpired": sessionExpired,
	})
}
