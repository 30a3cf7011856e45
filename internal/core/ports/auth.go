package ports

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

// AuthRepository looks up accounts for authentication. A missing account is
// (nil, nil), not an error: the service decides how much to reveal.
type AuthRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// LoginThrottle counts consecutive failed logins per email. Implementations
// are best-effort; callers treat errors as "not throttled".
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService authenticates credentials and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
