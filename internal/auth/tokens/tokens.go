package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/loftwire/loftwire-api/internal/apperr"
)

// Claims is the bearer-token payload: the owning user id plus the standard
// issued-at and expiry claims. Tokens are never persisted server-side.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate issues an HS256-signed token for userID with a fixed lifetime
// from issuance.
func Generate(secret []byte, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrTokenCreation, err)
	}
	return signed, nil
}

// Validate parses and verifies a token string, enforcing the expected
// signing algorithm and expiry. Returns the decoded claims.
func Validate(secret []byte, tokenString string) (*Claims, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}
