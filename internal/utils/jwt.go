package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in issued tokens
type Claims struct {
	UserID               uint `json:"user_id"` // Authenticated user id
	jwt.RegisteredClaims      // Standard claims (exp, iat)
}

// tokenLifetime is how long an issued token stays valid
const tokenLifetime = 24 * time.Hour

// GenerateJWT signs a token for the given user id
func GenerateJWT(userID uint, secret string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT validates a token string and returns its claims
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
