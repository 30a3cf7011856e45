package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
	"github.com/dicri/evidencetrack/internal/core/security"
)

func testHasher() *security.PasswordHasher {
	return security.NewPasswordHasher(4)
}

type stubUserRepo struct {
	stored *domain.User

	gotCreateHash string
	gotUpdateHash *string
}

func (r *stubUserRepo) Create(_ context.Context, fullName, email, passwordHash string, roleID int64) (*domain.User, error) {
	r.gotCreateHash = passwordHash
	return &domain.User{UserID: 1, FullName: fullName, Email: email, RoleID: roleID}, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	if r.stored == nil {
		return nil, nil
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, _ ports.ListUsersInput) ([]domain.User, error) {
	return nil, nil
}

func (r *stubUserRepo) Update(_ context.Context, userID int64, fullName, email string, roleID int64, passwordHash *string) (*domain.User, error) {
	r.gotUpdateHash = passwordHash
	return &domain.User{UserID: userID, FullName: fullName, Email: email, RoleID: roleID}, nil
}

func (r *stubUserRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (r *stubUserRepo) TotalCount(_ context.Context) (int64, error) {
	return 0, nil
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo, testHasher())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		FullName: "Bob Lane",
		Email:    "bob@example.com",
		Password: "plain-pass",
		RoleID:   2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if repo.gotCreateHash == "plain-pass" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.gotCreateHash), []byte("plain-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Update_OmittedPasswordKeepsHash(t *testing.T) {
	repo := &stubUserRepo{stored: &domain.User{UserID: 1, FullName: "Bob Lane", Email: "bob@example.com", RoleID: 2}}
	svc := NewUserService(repo, testHasher())

	_, err := svc.Update(context.Background(), 1, ports.UpdateUserInput{
		FullName: strPtr("Robert Lane"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if repo.gotUpdateHash != nil {
		t.Fatalf("expected nil hash when password omitted, got %v", repo.gotUpdateHash)
	}
}

func TestUserService_Update_SuppliedPasswordRehashed(t *testing.T) {
	repo := &stubUserRepo{stored: &domain.User{UserID: 1, Email: "bob@example.com"}}
	svc := NewUserService(repo, testHasher())

	_, err := svc.Update(context.Background(), 1, ports.UpdateUserInput{
		Password: strPtr("new-pass"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if repo.gotUpdateHash == nil {
		t.Fatalf("expected new hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*repo.gotUpdateHash), []byte("new-pass")); err != nil {
		t.Fatalf("new hash does not match password: %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(&stubUserRepo{}, testHasher())

	_, err := svc.GetByID(context.Background(), 9)

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != "USER_NOT_FOUND" {
		t.Fatalf("expected USER_NOT_FOUND, got %s", apiErr.Code)
	}
}
