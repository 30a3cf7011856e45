package handler

import "github.com/dicri/evidencetrack/internal/core/domain"

type createRoleRequest struct {
	RoleName string `json:"roleName" validate:"required,min=1,max=50"`
}

type updateRoleRequest struct {
	RoleName *string `json:"roleName" validate:"omitempty,min=1,max=50"`
}

type roleIDParams struct {
	RoleID int64 `param:"roleId" validate:"required,gt=0"`
}

type listRolesQuery struct {
	Offset *int `query:"offset" validate:"omitempty,min=0"`
	Limit  *int `query:"limit"  validate:"omitempty,min=1"`
}

type roleData struct {
	Role *domain.Role `json:"role"`
}

type roleListData struct {
	Roles []domain.Role `json:"roles"`
}
