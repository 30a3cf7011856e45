package ports

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

type UpdateRoleInput struct {
	RoleName *string
}

type ListRolesInput struct {
	Offset *int
	Limit  *int
}

type RoleRepository interface {
	Create(ctx context.Context, roleName string) (*domain.Role, error)
	GetByID(ctx context.Context, roleID int64) (*domain.Role, error)
	List(ctx context.Context, filters ListRolesInput) ([]domain.Role, error)
	Update(ctx context.Context, roleID int64, roleName string) (*domain.Role, error)
	Delete(ctx context.Context, roleID int64) error
	TotalCount(ctx context.Context) (int64, error)
}

type RoleService interface {
	Create(ctx context.Context, roleName string) (*domain.Role, error)
	GetByID(ctx context.Context, roleID int64) (*domain.Role, error)
	List(ctx context.Context, filters ListRolesInput) ([]domain.Role, error)
	Update(ctx context.Context, roleID int64, input UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, roleID int64) error
	TotalCount(ctx context.Context) (int64, error)
}
