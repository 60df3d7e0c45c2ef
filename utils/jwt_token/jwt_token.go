package jwt_token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/speedywheel/rental/utils"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// Claims binds a user's email identity to the token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken signs a token asserting the given email identity. The only
// validation is that the identity payload is non-empty.
func IssueToken(email string) (string, error) {
	if email == "" {
		return "", errors.New("cannot issue token for empty identity")
	}

	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(utils.GetJWTSecret())
}

// VerifyToken parses and validates a token and returns the email it asserts.
// Any malformed, mistyped, badly signed, or expired token collapses to
// utils.ErrUnauthorized; callers only distinguish "no usable identity".
func VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return utils.GetJWTSecret(), nil
	})
	if err != nil {
		return "", utils.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", utils.ErrUnauthorized
	}

	return claims.Email, nil
}
