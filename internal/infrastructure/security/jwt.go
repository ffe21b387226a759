package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mangodesk/summary-service/internal/application/auth"
	"github.com/mangodesk/summary-service/internal/domain"
)

// JWTTokens signs and verifies both session and verification tokens.
// The purpose claim keeps them from being swapped: a verification
// token can never authorize a request and a session token can never
// verify an address.
type JWTTokens struct {
	secret []byte
	issuer string
}

func NewJWTTokens(secret string, issuer string) *JWTTokens {
	return &JWTTokens{
		secret: []byte(secret),
		issuer: issuer,
	}
}

type tokenClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (t *JWTTokens) Issue(email string, purpose auth.TokenPurpose, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Purpose: string(purpose),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

func (t *JWTTokens) Verify(token string, purpose auth.TokenPurpose) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(tk *jwt.Token) (any, error) {
		// prevent alg confusion
		if tk.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired()
		}
		return "", domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return "", domain.ErrTokenInvalid()
	}

	if claims.Purpose != string(purpose) || claims.Subject == "" {
		return "", domain.ErrTokenInvalid()
	}

	return claims.Subject, nil
}
