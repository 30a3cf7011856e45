package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/api/metrics"
	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// EvidenceItemHandler handles HTTP requests for evidence-item operations.
type EvidenceItemHandler struct {
	service   ports.EvidenceItemService
	validator *RequestValidator
}

func NewEvidenceItemHandler(service ports.EvidenceItemService, validator *RequestValidator) *EvidenceItemHandler {
	return &EvidenceItemHandler{service: service, validator: validator}
}

// Create registers an evidence item under a case file.
//
// @Summary      Create an evidence item
// @Tags         evidence-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEvidenceItemRequest  true  "Evidence item details"
// @Success      201   {object}  evidenceItemData
// @Failure      400   {object}  map[string]any
// @Router       /evidence-items [post]
func (h *EvidenceItemHandler) Create(c echo.Context) error {
	identity, err := authUser(c)
	if err != nil {
		return err
	}

	var req createEvidenceItemRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateEvidenceItemInput{
		CaseFileID:    req.CaseFileID,
		Description:   req.Description,
		Color:         req.Color,
		Size:          req.Size,
		Weight:        req.Weight,
		LocationFound: req.LocationFound,
	}, identity.UserID)
	if err != nil {
		return err
	}

	metrics.EvidenceItemsCreatedTotal.Inc()
	return respondSuccess(c, http.StatusCreated,
		evidenceItemData{EvidenceItem: item}, "Evidence item created successfully")
}

func (h *EvidenceItemHandler) Update(c echo.Context) error {
	var req updateEvidenceItemRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	var params evidenceItemIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), params.EvidenceItemID, ports.UpdateEvidenceItemInput{
		Description:   req.Description,
		Color:         req.Color,
		Size:          req.Size,
		Weight:        req.Weight,
		LocationFound: req.LocationFound,
	})
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK,
		evidenceItemData{EvidenceItem: item}, "Evidence item updated successfully")
}

func (h *EvidenceItemHandler) Delete(c echo.Context) error {
	var params evidenceItemIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), params.EvidenceItemID); err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, nil, "Evidence item deleted successfully")
}

func (h *EvidenceItemHandler) GetByID(c echo.Context) error {
	var params evidenceItemIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	item, err := h.service.GetByID(c.Request().Context(), params.EvidenceItemID)
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, evidenceItemData{EvidenceItem: item}, "")
}

// List returns the evidence items of one case file.
func (h *EvidenceItemHandler) List(c echo.Context) error {
	var query listEvidenceItemsQuery
	if err := h.validator.BindQuery(c, &query); err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), ports.ListEvidenceItemsInput{
		CaseFileID: query.CaseFileID,
		Offset:     query.Offset,
		Limit:      query.Limit,
	})
	if err != nil {
		return err
	}

	if items == nil {
		items = []domain.EvidenceItem{}
	}
	return respondSuccess(c, http.StatusOK, evidenceItemListData{EvidenceItems: items}, "")
}

// CountByCaseFile returns how many evidence items one case file holds.
func (h *EvidenceItemHandler) CountByCaseFile(c echo.Context) error {
	var query countEvidenceItemsQuery
	if err := h.validator.BindQuery(c, &query); err != nil {
		return err
	}

	total, err := h.service.CountByCaseFile(c.Request().Context(), query.CaseFileID)
	if err != nil {
		return err
	}
	return respondSuccess(c, http.StatusOK, totalRowsData{TotalRows: total}, "")
}
