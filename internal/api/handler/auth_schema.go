package handler

import "github.com/dicri/evidencetrack/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginResponse carries the access token plus the account it belongs to.
// The password hash is excluded from the JSON contract at the domain level.
type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type profileResponse struct {
	User *domain.Identity `json:"user"`
}
