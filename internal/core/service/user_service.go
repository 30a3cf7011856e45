package service

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
	"github.com/dicri/evidencetrack/internal/core/security"
)

func errUserNotFound() *domain.APIError {
	return domain.NotFound("User not found", "USER_NOT_FOUND")
}

type UserService struct {
	repo      ports.UserRepository
	passwords *security.PasswordHasher
}

func NewUserService(repo ports.UserRepository, passwords *security.PasswordHasher) *UserService {
	return &UserService{repo: repo, passwords: passwords}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input.FullName, input.Email, hash, input.RoleID)
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserNotFound()
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, filters ports.ListUsersInput) ([]domain.User, error) {
	return s.repo.List(ctx, filters)
}

// Update merges supplied fields over the stored user. A supplied password
// is rehashed; omitted, the stored hash is left untouched.
func (s *UserService) Update(ctx context.Context, userID int64, input ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errUserNotFound()
	}

	if input.FullName != nil {
		existing.FullName = *input.FullName
	}
	if input.Email != nil {
		existing.Email = *input.Email
	}
	if input.RoleID != nil {
		existing.RoleID = *input.RoleID
	}

	var passwordHash *string
	if input.Password != nil {
		hash, err := s.passwords.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}

	return s.repo.Update(ctx, userID, existing.FullName, existing.Email, existing.RoleID, passwordHash)
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	existing, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errUserNotFound()
	}
	return s.repo.Delete(ctx, userID)
}

func (s *UserService) TotalCount(ctx context.Context) (int64, error) {
	return s.repo.TotalCount(ctx)
}
