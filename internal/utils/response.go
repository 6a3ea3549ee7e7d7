package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the plain error body of the solidtime API.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse is the 422 body: a summary message plus messages per field.
type ValidationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// APIExceptionResponse is returned for domain errors such as a missing
// running time entry.
type APIExceptionResponse struct {
	Error   bool   `json:"error"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// RespondData writes body as is. Solidtime wraps payloads itself.
func RespondData(c *gin.Context, status int, body any) {
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}

// RespondMessage aborts with a {"message": ...} body.
func RespondMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, MessageResponse{Message: message})
}

// RespondValidation aborts with a 422 carrying the per field messages.
func RespondValidation(c *gin.Context, message string, fields map[string][]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationResponse{
		Message: message,
		Errors:  fields,
	})
}

// RespondAPIException aborts with a keyed domain error.
func RespondAPIException(c *gin.Context, status int, key, message string) {
	c.AbortWithStatusJSON(status, APIExceptionResponse{
		Error:   true,
		Key:     key,
		Message: message,
	})
}
