package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/api/metrics"
	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// CaseFileHandler handles HTTP requests for case-file operations.
type CaseFileHandler struct {
	service   ports.CaseFileService
	validator *RequestValidator
}

func NewCaseFileHandler(service ports.CaseFileService, validator *RequestValidator) *CaseFileHandler {
	return &CaseFileHandler{service: service, validator: validator}
}

// Create registers a new case file owned by the authenticated technician.
//
// @Summary      Create a case file
// @Tags         case-files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCaseFileRequest  true  "Case file details"
// @Success      201   {object}  caseFileData
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /case-files [post]
func (h *CaseFileHandler) Create(c echo.Context) error {
	identity, err := authUser(c)
	if err != nil {
		return err
	}

	var req createCaseFileRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	caseFile, err := h.service.Create(c.Request().Context(), ports.CreateCaseFileInput{
		CaseCode:    req.CaseCode,
		Description: req.Description,
	}, identity.UserID)
	if err != nil {
		return err
	}

	metrics.CaseFilesCreatedTotal.Inc()
	return respondSuccess(c, http.StatusCreated,
		caseFileData{CaseFile: caseFile}, "Case file created successfully")
}

// Update merges the supplied fields into an existing case file.
//
// @Summary      Update a case file
// @Tags         case-files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        caseFileId  path      int                    true  "Case file id"
// @Param        body        body      updateCaseFileRequest  true  "Fields to update"
// @Success      200         {object}  caseFileData
// @Failure      400         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /case-files/{caseFileId} [put]
func (h *CaseFileHandler) Update(c echo.Context) error {
	var req updateCaseFileRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	var params caseFileIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	var status *domain.CaseStatus
	if req.Status != nil {
		s := domain.CaseStatus(*req.Status)
		status = &s
	}

	caseFile, err := h.service.Update(c.Request().Context(), params.CaseFileID, ports.UpdateCaseFileInput{
		Status:          status,
		Description:     req.Description,
		RejectionReason: req.RejectionReason,
		TechnicianID:    req.TechnicianID,
	})
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK,
		caseFileData{CaseFile: caseFile}, "Case file updated successfully")
}

// Delete removes a case file.
func (h *CaseFileHandler) Delete(c echo.Context) error {
	var params caseFileIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), params.CaseFileID); err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, nil, "Case file deleted successfully")
}

// GetByID returns one case file.
//
// @Summary      Get a case file by id
// @Tags         case-files
// @Produce      json
// @Security     BearerAuth
// @Param        caseFileId  path      int  true  "Case file id"
// @Success      200         {object}  caseFileData
// @Failure      404         {object}  map[string]any
// @Router       /case-files/{caseFileId} [get]
func (h *CaseFileHandler) GetByID(c echo.Context) error {
	var params caseFileIDParams
	if err := h.validator.BindParams(c, &params); err != nil {
		return err
	}

	caseFile, err := h.service.GetByID(c.Request().Context(), params.CaseFileID)
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK, caseFileData{CaseFile: caseFile}, "")
}

// List returns case files filtered by status and registration date range.
func (h *CaseFileHandler) List(c echo.Context) error {
	var query listCaseFilesQuery
	if err := h.validator.BindQuery(c, &query); err != nil {
		return err
	}

	var status *domain.CaseStatus
	if query.Status != nil {
		s := domain.CaseStatus(*query.Status)
		status = &s
	}

	caseFiles, err := h.service.List(c.Request().Context(), ports.ListCaseFilesInput{
		Status:                status,
		InitialRegisteredDate: query.InitialRegisteredDate,
		FinalRegisteredDate:   query.FinalRegisteredDate,
		Offset:                query.Offset,
		Limit:                 query.Limit,
	})
	if err != nil {
		return err
	}

	if caseFiles == nil {
		caseFiles = []domain.CaseFile{}
	}
	return respondSuccess(c, http.StatusOK, caseFileListData{CaseFiles: caseFiles}, "")
}

// TotalCount returns the number of case files in the store.
func (h *CaseFileHandler) TotalCount(c echo.Context) error {
	total, err := h.service.TotalCount(c.Request().Context())
	if err != nil {
		return err
	}
	return respondSuccess(c, http.StatusOK, totalRowsData{TotalRows: total}, "")
}
