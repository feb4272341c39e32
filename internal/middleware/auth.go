package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/auth"
	"github.com/fleetops/fleet-backoffice/internal/models"
)

const claimsContextKey = "authClaims"

// RequireAuth validates the bearer token and attaches the claims to the
// request context. Every request behind this gate either carries a valid
// token or is rejected with 401.
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		claims, err := authService.ValidateToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose user lacks the required role. Admins
// pass every role check.
func RequireRole(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User context not found"})
			return
		}
		if claims.Role != requiredRole && claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetClaims extracts the authenticated user's claims from the request
// context.
func GetClaims(c *gin.Context) (*models.Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.Claims)
	return claims, ok
}
