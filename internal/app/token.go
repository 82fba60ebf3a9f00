// Package app holds the application services and business logic.
package app

import (
	"errors"
	"time"

	"newsroom/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates a token with a bad signature, malformed
// payload, or past expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

const tokenTTL = 24 * time.Hour

// Claims is the JWT payload carrying the requester's identity.
type Claims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed identity tokens. Verification
// is self-contained: nothing but the signing secret is consulted.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

// Issue signs a token embedding the identity, expiring 24 hours from now.
func (s *TokenService) Issue(ident domain.Identity) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: ident.UserID,
		Role:   string(ident.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded
// identity. Any failure collapses to ErrInvalidToken.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Identity{}, ErrInvalidToken
	}
	return domain.Identity{UserID: claims.UserID, Role: role}, nil
}
