package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

// AuthRepository looks up accounts through the admin stored procedures.
type AuthRepository struct {
	pool *pgxpool.Pool
}

func NewAuthRepository(pool *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{pool: pool}
}

// FindUserByEmail returns the account with its role resolved, or (nil, nil)
// when no account matches.
func (r *AuthRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_user_find_by_email($1)", email)

	var user domain.User
	err := row.Scan(&user.UserID, &user.FullName, &user.Email,
		&user.PasswordHash, &user.RoleID, &user.RoleName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}
