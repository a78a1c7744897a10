package v1

import (
	"net/http"

	"github.com/commonpurse/backend/internal/auth"
	"github.com/commonpurse/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// caller returns the authenticated user for the request.
//
// The auth middleware guarantees a caller on every guarded route, this
// only guards against routes that are wired up without it.
func caller(c *gin.Context) (models.User, bool) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpError{Error: "authentication required"})
	}

	return user, ok
}
