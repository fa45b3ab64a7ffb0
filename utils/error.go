package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyrooms/scheduling"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
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

// JSONSchedulingError maps a scheduling validation failure to a structured
// response. Conflict-class codes report 409, everything else 400; errors
// without a scheduling code fall back to 500.
func JSONSchedulingError(c *gin.Context, err error) {
	code := scheduling.ErrorCode(err)
	status := http.StatusBadRequest
	switch code {
	case scheduling.CodeUnavailable, scheduling.CodeOverlappingBookings:
		status = http.StatusConflict
	case "":
		status = http.StatusInternalServerError
	}
	Logger := GetLogger()
	Logger.Warn("scheduling error", zap.String("code", code), zap.Error(err))
	c.JSON(status, ErrorResponse{Message: err.Error(), Code: code})
}
