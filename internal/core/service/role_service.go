package service

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

func errRoleNotFound() *domain.APIError {
	return domain.NotFound("Role not found", "ROLE_NOT_FOUND")
}

type RoleService struct {
	repo ports.RoleRepository
}

func NewRoleService(repo ports.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) Create(ctx context.Context, roleName string) (*domain.Role, error) {
	return s.repo.Create(ctx, roleName)
}

func (s *RoleService) GetByID(ctx context.Context, roleID int64) (*domain.Role, error) {
	role, err := s.repo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errRoleNotFound()
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context, filters ports.ListRolesInput) ([]domain.Role, error) {
	return s.repo.List(ctx, filters)
}

func (s *RoleService) Update(ctx context.Context, roleID int64, input ports.UpdateRoleInput) (*domain.Role, error) {
	existing, err := s.repo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errRoleNotFound()
	}

	if input.RoleName != nil {
		existing.RoleName = *input.RoleName
	}

	return s.repo.Update(ctx, roleID, existing.RoleName)
}

func (s *RoleService) Delete(ctx context.Context, roleID int64) error {
	existing, err := s.repo.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errRoleNotFound()
	}
	return s.repo.Delete(ctx, roleID)
}

func (s *RoleService) TotalCount(ctx context.Context) (int64, error) {
	return s.repo.TotalCount(ctx)
}
