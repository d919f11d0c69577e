// Package response renders the uniform API envelope: a success flag, a
// human-readable message, and either a payload or a status code.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/apperr"
)

func Success(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": msg,
		"data":    data,
	})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success":     false,
		"message":     msg,
		"status_code": status,
	})
}

// FromError maps a service error onto the envelope using its taxonomy code.
func FromError(c *gin.Context, err error) {
	Error(c, apperr.StatusOf(err), err.Error())
}

// BadRequest is the shorthand for binding failures in handlers.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}
