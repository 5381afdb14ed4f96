package middleware

import (
	"net/http"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates a route on the admin role. It runs after
// JWTAuthMiddleware and checks the verified identity's stored role, so a
// stale token cannot outlive a demotion.
func AdminOnlyMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := c.Get("email")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
			return
		}

		u, err := repo.GetByEmail(c.Request.Context(), email.(string))
		if err != nil || u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
