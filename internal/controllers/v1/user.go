package v1

import (
	"errors"
	"net/http"

	"github.com/commonpurse/backend/internal/httputil"
	"github.com/commonpurse/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsUsers)
	r.GET("", FindUserByEmail)
}

// User is the representation of a user in API v1.
type User struct {
	models.DefaultModel
	Email string `json:"email" example:"jane@example.com"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                  // The user, or null if no user matches
	Error *string `json:"error" example:"the email query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUsers(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Find user by email
// @Description	Resolves an email address to a user. Returns null data instead of a 404 when no user matches so that clients can search first and decide after.
// @Tags			Users
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			email	query		string	true	"Email address to search for"
// @Router			/v1/users [get]
func FindUserByEmail(c *gin.Context) {
	if _, ok := caller(c); !ok {
		return
	}

	email, ok := c.GetQuery("email")
	if !ok || email == "" {
		e := errEmailParameterMissing.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &e})
		return
	}

	user, err := models.FindUserByEmail(models.DB, email)
	if err != nil {
		// No match is not an error here
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusOK, UserResponse{Data: nil})
			return
		}

		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
