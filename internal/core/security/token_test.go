package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	identity := domain.Identity{
		UserID:   42,
		Email:    "alice@example.com",
		FullName: "Alice Smith",
		RoleName: domain.RoleTechnician,
	}

	token, err := svc.Issue(identity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if *got != identity {
		t.Fatalf("identity mismatch: got %+v, want %+v", *got, identity)
	}
}

func TestTokenService_Expired(t *testing.T) {
	now := time.Now()
	claims := accessClaims{
		UserID: 1,
		Email:  "bob@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(domain.Identity{UserID: 1})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_WrongAlgorithm(t *testing.T) {
	// "none" tokens must never verify, even with a matching secret.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": 1,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
