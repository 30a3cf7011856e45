package ports

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

type CreateUserInput struct {
	FullName string
	Email    string
	Password string
	RoleID   int64
}

type UpdateUserInput struct {
	FullName *string
	Email    *string
	Password *string
	RoleID   *int64
}

type ListUsersInput struct {
	Offset *int
	Limit  *int
}

type UserRepository interface {
	Create(ctx context.Context, fullName, email, passwordHash string, roleID int64) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	List(ctx context.Context, filters ListUsersInput) ([]domain.User, error)
	Update(ctx context.Context, userID int64, fullName, email string, roleID int64, passwordHash *string) (*domain.User, error)
	Delete(ctx context.Context, userID int64) error
	TotalCount(ctx context.Context) (int64, error)
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	List(ctx context.Context, filters ListUsersInput) ([]domain.User, error)
	Update(ctx context.Context, userID int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID int64) error
	TotalCount(ctx context.Context) (int64, error)
}
