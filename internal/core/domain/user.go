package domain

// Role names known to the route allow-lists. Roles themselves are rows in
// the store; these constants cover the ones the gateway gates on.
const (
	RoleTechnician    = "TECHNICIAN"
	RoleCoordinator   = "COORDINATOR"
	RoleAdministrator = "ADMINISTRATOR"
)

// User models an account in the system. PasswordHash never leaves the
// process: the json tag guarantees it is dropped from every response.
type User struct {
	UserID       int64  `json:"userId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int64  `json:"roleId,omitempty"`
	RoleName     string `json:"roleName,omitempty"`
}

// Identity is the authenticated caller extracted from a verified access
// token. It lives for one request only.
type Identity struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	RoleName string `json:"roleName"`
}
