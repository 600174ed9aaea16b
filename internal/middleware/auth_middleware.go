package middleware

import (
	"net/http"
	"strings"

	"boardform/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by JWTAuthMiddleware.
const (
	UserIDKey     = "userID"
	PrivilegedKey = "privileged"
)

// JWTAuthMiddleware validates the bearer token issued by the host and puts
// the viewer id plus the advisory privilege hint on the request context.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		role, _ := claims["role"].(string)
		accountOwner, _ := claims["account_owner"].(bool)
		viewer := auth.Claims{UserID: userID, Role: role, AccountOwner: accountOwner}

		c.Set(UserIDKey, userID)
		c.Set(PrivilegedKey, viewer.Privileged())
		c.Next()
	}
}

// RequirePrivileged gates layout mutation routes on the host-supplied
// privilege hint. True enforcement belongs to the host; this only decides
// whether the operations are offered at all.
func RequirePrivileged() gin.HandlerFunc {
	return func(c *gin.Context) {
		privileged, exists := c.Get(PrivilegedKey)
		if !exists || privileged != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
