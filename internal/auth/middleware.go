// Package auth resolves the authenticated caller for every request.
package auth

import (
	"net/http"
	"strings"

	"github.com/commonpurse/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextUser = "common_purse:user"

// Middleware requires a valid Bearer token on every request it guards and
// resolves it to the calling user. Requests without a caller identity are
// rejected with 401 before any other check runs.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrTokenInvalid.Error()})
			return
		}

		// The token may outlive the user
		var user models.User
		err = models.DB.First(&user, "id = ?", userID).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrTokenInvalid.Error()})
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// UserFromContext returns the authenticated caller set by Middleware.
func UserFromContext(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(contextUser)
	if !ok {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}
