package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"est/internal/domain"
	"est/internal/identity"
)

const principalKey = "principal"

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return token, token != ""
}

// RequireIdentity resolves the caller's principal and aborts with 401 when
// no principal can be resolved. Authorization beyond authentication stays
// in the workflows: a resolved-but-unauthorized caller is not this
// middleware's concern.
func RequireIdentity(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No valid authorization token provided",
			})
			return
		}

		p, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token or user not found",
			})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// Principal returns the principal set by RequireIdentity.
func Principal(c *gin.Context) (*domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*domain.Principal)
	return p, ok
}
