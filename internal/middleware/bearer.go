package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yonasBSD/solidtime/internal/utils"
)

// Unauthenticated is the message the API answers 401s with.
const Unauthenticated = "Unauthenticated."

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// BearerAuthMiddleware rejects requests without a bearer token. When expected
// is not empty the token must match it.
func BearerAuthMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.Request)
		if !ok {
			utils.RespondMessage(c, http.StatusUnauthorized, Unauthenticated)
			return
		}
		if expected != "" && subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			utils.RespondMessage(c, http.StatusUnauthorized, Unauthenticated)
			return
		}
		c.Set("token", token)
		c.Next()
	}
}
