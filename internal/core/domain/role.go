package domain

// Role is an assignable role row.
type Role struct {
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName"`
}
