package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

// ProfilePath is where a client without a guest profile is sent to create one.
const ProfilePath = "/api/me/guest"

// respondError maps service errors onto HTTP statuses and the JSON envelope.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		code := http.StatusBadRequest
		if verr.Conflict {
			code = http.StatusConflict
		}
		utils.JSONFieldErrors(c, code, "Please correct the errors below.", verr.Fields)
	case errors.Is(err, services.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONFieldErrors(c, http.StatusUnauthorized, "Invalid username or password.", map[string][]string{
			services.NonFieldErrors: {"Invalid username or password."},
		})
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrGuestProfileRequired):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Please create a guest profile first.",
			"next":    ProfilePath,
		})
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	default:
		log.Printf("❌ [%s] %s %s: %v", middleware.RequestID(c), c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

// paramID reads a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}
