package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Password reset tokens are short-lived signed JWTs instead of stored
// nonces, so no reset state lives in the database.

var ErrInvalidResetToken = errors.New("invalid or expired reset token")

type resetClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// NewResetToken issues a signed password-reset token for the user.
func NewResetToken(secret, userID string, ttl time.Duration) (string, error) {
	claims := resetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "password_reset",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResetToken validates a reset token and returns the user ID it
// was issued for.
func ParseResetToken(secret, tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &resetClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidResetToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidResetToken
	}

	claims, ok := token.Claims.(*resetClaims)
	if !ok || claims.Subject != "password_reset" || claims.UserID == "" {
		return "", ErrInvalidResetToken
	}
	return claims.UserID, nil
}
