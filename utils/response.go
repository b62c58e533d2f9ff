package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// JSONFieldErrors reports per-field problems in the same envelope.
func JSONFieldErrors(c *gin.Context, code int, message string, fields map[string][]string) {
	c.JSON(code, gin.H{"status": "error", "message": message, "errors": fields})
}

// JSONBindError answers a request whose body failed to bind or validate.
func JSONBindError(c *gin.Context, err error) {
	JSONFieldErrors(c, http.StatusBadRequest, "Invalid request payload", FieldErrors(err))
}
