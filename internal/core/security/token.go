// Package security holds the token service and the credential verifier.
// Both are constructed once at startup from process-wide configuration and
// are safe for concurrent use.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

var (
	// ErrTokenExpired is returned by Verify for structurally valid tokens
	// whose expiration has elapsed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure: bad
	// signature, wrong algorithm, malformed structure.
	ErrTokenInvalid = errors.New("invalid token")
)

// accessClaims is the payload encoded into every access token.
type accessClaims struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	RoleName string `json:"roleName"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-bound access tokens.
// Tokens are HS256 only; a token signed with any other algorithm fails
// verification regardless of its signature.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue encodes the identity plus an expiration computed from the configured
// TTL and signs the result.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID:   identity.UserID,
		Email:    identity.Email,
		FullName: identity.FullName,
		RoleName: identity.RoleName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes the token and checks signature, algorithm, and expiration.
// It distinguishes ErrTokenExpired from ErrTokenInvalid; callers that must
// not leak the distinction collapse both.
func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return &domain.Identity{
		UserID:   claims.UserID,
		Email:    claims.Email,
		FullName: claims.FullName,
		RoleName: claims.RoleName,
	}, nil
}
