// Package auth mints and checks the access tokens attached to a session.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the user id and role alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	UserType string `json:"role"`
}

// GenerateToken signs an HS256 token for the user. A zero validity produces
// a token without expiry.
func GenerateToken(userID, userType string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Subject:  userID,
		},
		UserID:   userID,
		UserType: userType,
	}
	if validity != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// ParseToken verifies tokenString and returns its claims.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
