package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/auth"
	"github.com/scentara/perfume-api/services"
)

// ValidateToken authenticates the request off the Bearer access token and
// stores user_id and user_type for downstream handlers. Anonymous tokens
// pass; route-level guards decide what anonymous users may do.
func ValidateToken(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "), auth.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Next()
	}
}

// OptionalToken is ValidateToken without the rejection: an absent or bad
// token just leaves the request unauthenticated.
func OptionalToken(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "), auth.TokenTypeAccess); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_type", claims.UserType)
			}
		}
		c.Next()
	}
}

// RequireAdmin rechecks the role against the database rather than trusting
// a claim, so a demoted admin loses access on the next request.
func RequireAdmin(users services.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Get("user_id")
		userID, _ := id.(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if u == nil || !u.IsActive || !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
