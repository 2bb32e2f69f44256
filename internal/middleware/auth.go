package middleware

import (
	"errors"
	"net/http"

	"todo-service/backend/internal/models"
	"todo-service/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// APIKeyHeader carries the bearer credential. Header lookup is
// case-insensitive per HTTP convention.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth resolves the X-API-Key header to a registered user and stores
// it on the request context. Runs before every todo and stats route.
func APIKeyAuth(db *gorm.DB, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing API key",
			})
			return
		}

		user, err := users.FindByAPIKey(db, key)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid API key",
			})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "failed to authenticate request",
			})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser returns the user placed on the context by APIKeyAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
