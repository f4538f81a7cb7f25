package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "paasword"
	tokenAudience = "paasword-api"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrClientMissing = errors.New("client name is required")
)

// Claims represents the JWT claims of an API client token.
type Claims struct {
	jwt.RegisteredClaims
	Client string `json:"client"`
}

// GenerateToken creates a signed access token for the named API client.
// A zero expiry issues a token that never expires.
func GenerateToken(client, secret string, expiry time.Duration) (string, error) {
	if client == "" {
		return "", ErrClientMissing
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   tokenIssuer,
			Subject:  client,
			Audience: jwt.ClaimStrings{tokenAudience},
			IssuedAt: jwt.NewNumericDate(now),
		},
		Client: client,
	}
	if expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string, returning the claims if valid.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Client == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
