package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// UserHandler handles HTTP requests for user administration.
type UserHandler struct {
	service   ports.UserService
	validator *RequestValidator
}

func NewUserHandler(service ports.UserService, validator *RequestValidator) *UserHandler {
	return &UserHandler{service: service, validator: validator}
}

// Create registers a new user account.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userData
// @Failure      400   {object}  map[string]any
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusCreated, userData{User: user}, "User created successfully")
}

func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	var params userIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), params.UserID, ports.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, userData{User: user}, "User updated successfully")
}

func (h *UserHandler) Delete(c echo.Context) error {
	var params userIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), params.UserID); err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, nil, "User deleted successfully")
}

func (h *UserHandler) GetByID(c echo.Context) error {
	var params userIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	user, err := h.service.GetByID(c.Request().Context(), params.UserID)
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, userData{User: user}, "")
}

func (h *UserHandler) List(c echo.Context) error {
	var query listUsersQuery
	if err := h.validator.BindQuery(c, &query); err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context(), ports.ListUsersInput{
		Offset: query.Offset,
		Limit:  query.Limit,
	})
	if err != nil {
		return err
	}

	if users == nil {
		users = []domain.User{}
	}
	return respondSuccess(c, http.StatusOK, userListData{Users: users}, "")
}

func (h *UserHandler) TotalCount(c echo.Context) error {
	total, err := h.service.TotalCount(c.Request().Context())
	if err != nil {
		return err
	}
	return respondSuccess(c, http.StatusOK, totalRowsData{TotalRows: total}, "")
}
