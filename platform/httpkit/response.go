// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"phonedesk/platform/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response format for every API endpoint:
// a status code mirrored in the body, a human-readable message, the
// operation payload on success, and optional metadata.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Payload interface{} `json:"payload,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// OK sends a 200 envelope with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Status:  http.StatusOK,
		Message: "OK",
		Payload: payload,
	})
}

// OKMeta sends a 200 envelope with payload and metadata.
func OKMeta(c *gin.Context, payload, meta interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Status:  http.StatusOK,
		Message: "OK",
		Payload: payload,
		Meta:    meta,
	})
}

// Error sends an error envelope with the given status code and message.
func Error(c *gin.Context, status int, message string, meta interface{}) {
	c.JSON(status, Envelope{
		Status:  status,
		Message: message,
		Meta:    meta,
	})
}

// HandleError maps domain errors to HTTP envelopes.
// If the error is a typed *apperr.Error, its Kind determines the status code.
// Otherwise it defaults to 400 Bad Request.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		Error(c, domainErr.HTTPStatus(), domainErr.Message, domainErr.Details)
		return true
	}

	// Fallback for non-typed errors
	Error(c, http.StatusBadRequest, err.Error(), nil)
	return true
}
