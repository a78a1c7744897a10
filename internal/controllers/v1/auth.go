package v1

import (
	"net/http"
	"strings"

	"github.com/commonpurse/backend/internal/auth"
	"github.com/commonpurse/backend/internal/httputil"
	"github.com/commonpurse/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsAuth)
	r.POST("/login", Login)
}

type Credentials struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type AuthData struct {
	User  User   `json:"user"`  // The authenticated user
	Token string `json:"token"` // Bearer token for subsequent requests
}

type AuthResponse struct {
	Data  *AuthData `json:"data"`                                              // The authentication data, if successful
	Error *string   `json:"error" example:"invalid email address or password"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Registers a new user. Every new user gets a default budget.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	AuthResponse
// @Failure		400			{object}	AuthResponse
// @Failure		409			{object}	AuthResponse
// @Failure		500			{object}	AuthResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AuthResponse{Error: &e})
		return
	}

	if strings.TrimSpace(credentials.Email) == "" {
		e := errEmailEmpty.Error()
		c.JSON(http.StatusBadRequest, AuthResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AuthResponse{Error: &e})
		return
	}

	user, err := models.RegisterUser(models.DB, credentials.Email, hash)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AuthResponse{Error: &e})
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, AuthResponse{Error: &e})
		return
	}

	data := AuthData{User: newUser(user), Token: token}
	c.JSON(http.StatusCreated, AuthResponse{Data: &data})
}

// @Summary		Login
// @Description	Authenticates a user and returns a Bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	AuthResponse
// @Failure		400			{object}	AuthResponse
// @Failure		401			{object}	AuthResponse
// @Failure		500			{object}	AuthResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AuthResponse{Error: &e})
		return
	}

	// The same error is returned for an unknown email and a wrong
	// password so that login attempts cannot probe for accounts
	user, err := models.FindUserByEmail(models.DB, credentials.Email)
	if err != nil || !auth.CheckPassword(credentials.Password, user.PasswordHash) {
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, AuthResponse{Error: &e})
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, AuthResponse{Error: &e})
		return
	}

	data := AuthData{User: newUser(user), Token: token}
	c.JSON(http.StatusOK, AuthResponse{Data: &data})
}
