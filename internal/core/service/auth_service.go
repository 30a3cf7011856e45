package service

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
	"github.com/dicri/evidencetrack/internal/core/security"
)

// AuthService implements credential login. The throttle is optional; when
// nil, logins are never rate limited.
type AuthService struct {
	repo      ports.AuthRepository
	tokens    *security.TokenService
	passwords *security.PasswordHasher
	throttle  ports.LoginThrottle
}

func NewAuthService(
	repo ports.AuthRepository,
	tokens *security.TokenService,
	passwords *security.PasswordHasher,
	throttle ports.LoginThrottle,
) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, passwords: passwords, throttle: throttle}
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password produce the same classified error so the response
// never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.throttle != nil {
		// Throttle errors are swallowed: a Redis outage must not block logins.
		if locked, err := s.throttle.TooManyFailures(ctx, email); err == nil && locked {
			return "", nil, domain.TooManyRequests(
				"Too many failed login attempts, try again later",
				"TOO_MANY_ATTEMPTS",
			)
		}
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !s.passwords.Compare(password, user.PasswordHash) {
		if s.throttle != nil {
			_ = s.throttle.RecordFailure(ctx, email)
		}
		return "", nil, domain.Unauthorized("Invalid credentials", "INVALID_CREDENTIALS")
	}

	token, err := s.tokens.Issue(domain.Identity{
		UserID:   user.UserID,
		Email:    user.Email,
		FullName: user.FullName,
		RoleName: user.RoleName,
	})
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}

	return token, user, nil
}
