package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// UserRepository persists user accounts through the admin stored procedures.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.UserID, &user.FullName, &user.Email,
		&user.RoleID, &user.RoleName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, fullName, email, passwordHash string, roleID int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_user_create($1, $2, $3, $4)",
		fullName, email, passwordHash, roleID)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_user_get_by_id($1)", userID)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context, filters ports.ListUsersInput) ([]domain.User, error) {
	offset, limit := pagination(filters.Offset, filters.Limit)

	rows, err := r.pool.Query(ctx,
		"SELECT * FROM admin.sp_user_list($1, $2)", offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.UserID, &user.FullName, &user.Email,
			&user.RoleID, &user.RoleName); err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, userID int64, fullName, email string, roleID int64, passwordHash *string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_user_update($1, $2, $3, $4, $5)",
		userID, fullName, email, roleID, passwordHash)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	if _, err := r.pool.Exec(ctx,
		"SELECT admin.sp_user_delete($1)", userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) TotalCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_user_total_count()").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}
