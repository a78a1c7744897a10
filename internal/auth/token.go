package auth

import (
	"errors"
	"os"
	"time"

	"github.com/commonpurse/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued access token stays valid.
const TokenLifetime = 24 * time.Hour

var (
	ErrTokenInvalid = errors.New("the access token is invalid or has expired")
	ErrNoSecret     = errors.New("JWT_SECRET must be set")
)

// Claims are the JWT claims of an access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func secret() ([]byte, error) {
	s, ok := os.LookupEnv("JWT_SECRET")
	if !ok || s == "" {
		return nil, ErrNoSecret
	}

	return []byte(s), nil
}

// GenerateToken issues a signed access token for the user.
func GenerateToken(user models.User) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken validates the token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
