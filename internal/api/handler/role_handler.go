package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

type RoleHandler struct {
	service   ports.RoleService
	validator *RequestValidator
}

func NewRoleHandler(service ports.RoleService, validator *RequestValidator) *RoleHandler {
	return &RoleHandler{service: service, validator: validator}
}

// Create registers a new role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role details"
// @Success      201   {object}  roleData
// @Failure      400   {object}  map[string]any
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	role, err := h.service.Create(c.Request().Context(), req.RoleName)
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusCreated, roleData{Role: role}, "Role created successfully")
}

func (h *RoleHandler) Update(c echo.Context) error {
	var req updateRoleRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	var params roleIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	role, err := h.service.Update(c.Request().Context(), params.RoleID, ports.UpdateRoleInput{
		RoleName: req.RoleName,
	})
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, roleData{Role: role}, "Role updated successfully")
}

func (h *RoleHandler) Delete(c echo.Context) error {
	var params roleIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), params.RoleID); err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, nil, "Role deleted successfully")
}

func (h *RoleHandler) GetByID(c echo.Context) error {
	var params roleIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	role, err := h.service.GetByID(c.Request().Context(), params.RoleID)
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, roleData{Role: role}, "")
}

func (h *RoleHandler) List(c echo.Context) error {
	var query listRolesQuery
	if err := h.validator.BindQuery(c, &query); err != nil {
		return err
	}

	roles, err := h.service.List(c.Request().Context(), ports.ListRolesInput{
		Offset: query.Offset,
		Limit:  query.Limit,
	})
	if err != nil {
		return err
	}

	if roles == nil {
		roles = []domain.Role{}
	}
	return respondSuccess(c, http.StatusOK, roleListData{Roles: roles}, "")
}

func (h *RoleHandler) TotalCount(c echo.Context) error {
	total, err := h.service.TotalCount(c.Request().Context())
	if err != nil {
		return err
	}
	return respondSuccess(c, http.StatusOK, totalRowsData{TotalRows: total}, "")
}
