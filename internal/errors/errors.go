package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every error response
type APIError struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

// Predefined errors
var (
	ErrUnauthorized  = NewAPIError("Authentication required")
	ErrNotFound      = NewAPIError("Resource not found")
	ErrInvalidInput  = NewAPIError("Invalid request body")
	ErrInternalError = NewAPIError("Internal server error")
)

// RespondWithError sends an error response and stops the handler chain
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = ErrUnauthorized.Message
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = ErrNotFound.Message
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = ErrInvalidInput.Message
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = ErrInternalError.Message
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(message))
}
