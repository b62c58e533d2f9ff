package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservations/services"
	"hotel-reservations/utils"
)

const identityKey = "identity"

// Authenticator resolves a bearer token to the caller behind it.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (services.Identity, error)
}

// Authenticate requires a valid bearer token and stores the caller's
// Identity on the context.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		id, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if !errors.Is(err, services.ErrUnauthenticated) {
				log.Printf("❌ [%s] identity lookup failed: %v", RequestID(c), err)
				utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
			} else {
				utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// CurrentIdentity returns the caller set by Authenticate, or services.Anonymous.
func CurrentIdentity(c *gin.Context) services.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(services.Identity); ok {
			return id
		}
	}
	return services.Anonymous
}
