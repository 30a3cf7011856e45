package handler

import "github.com/dicri/evidencetrack/internal/core/domain"

type createUserRequest struct {
	FullName string `json:"fullName" validate:"required,min=3,max=120"`
	Email    string `json:"email"    validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   int64  `json:"roleId"   validate:"required,gt=0"`
}

type updateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=3,max=120"`
	Email    *string `json:"email"    validate:"omitempty,email,max=120"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	RoleID   *int64  `json:"roleId"   validate:"omitempty,gt=0"`
}

type userIDParams struct {
	UserID int64 `param:"userId" validate:"required,gt=0"`
}

type listUsersQuery struct {
	Offset *int `query:"offset" validate:"omitempty,min=0"`
	Limit  *int `query:"limit"  validate:"omitempty,min=1"`
}

type userData struct {
	User *domain.User `json:"user"`
}

type userListData struct {
	Users []domain.User `json:"users"`
}
