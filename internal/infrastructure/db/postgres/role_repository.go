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

// RoleRepository persists roles through the admin stored procedures.
type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func scanRole(row pgx.Row) (*domain.Role, error) {
	var role domain.Role
	err := row.Scan(&role.RoleID, &role.RoleName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) Create(ctx context.Context, roleName string) (*domain.Role, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_role_create($1)", roleName)

	role, err := scanRole(row)
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, roleID int64) (*domain.Role, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_role_get_by_id($1)", roleID)

	role, err := scanRole(row)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (r *RoleRepository) List(ctx context.Context, filters ports.ListRolesInput) ([]domain.Role, error) {
	offset, limit := pagination(filters.Offset, filters.Limit)

	rows, err := r.pool.Query(ctx,
		"SELECT * FROM admin.sp_role_list($1, $2)", offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.RoleID, &role.RoleName); err != nil {
			return nil, fmt.Errorf("list roles: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) Update(ctx context.Context, roleID int64, roleName string) (*domain.Role, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_role_update($1, $2)", roleID, roleName)

	role, err := scanRole(row)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return role, nil
}

func (r *RoleRepository) Delete(ctx context.Context, roleID int64) error {
	if _, err := r.pool.Exec(ctx,
		"SELECT admin.sp_role_delete($1)", roleID); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func (r *RoleRepository) TotalCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		"SELECT * FROM admin.sp_role_total_count()").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return total, nil
}
