package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	actorIDKey   = "actor_id"
	actorRoleKey = "actor_role"
)

// RequireRole verifies the bearer token issued by the account service and
// rejects callers without the expected role claim. Token issuing lives
// outside this backend; only HS256 verification happens here.
func RequireRole(secret, role string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		claimRole, _ := claims["role"].(string)
		if claimRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "requires " + role + " role"})
			return
		}
		if id, ok := claims["user_id"].(float64); ok {
			c.Set(actorIDKey, int64(id))
		}
		c.Set(actorRoleKey, claimRole)
		c.Next()
	}
}

// ActorID returns the authenticated user id, 0 when the route is public.
func ActorID(c *gin.Context) int64 {
	if v, ok := c.Get(actorIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
