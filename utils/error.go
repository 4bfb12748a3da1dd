package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. MessageKey carries
// the localized translation key the frontend resolves (see braincore/errors.go).
type ErrorResponse struct {
	Message    string `json:"message"`
	MessageKey string `json:"messageKey,omitempty"`
	Details    string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONErrorKey sends an error response with a localized translation key.
func JSONErrorKey(c *gin.Context, status int, message string, messageKey string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("messageKey", messageKey))
	c.JSON(status, ErrorResponse{Message: message, MessageKey: messageKey})
}
