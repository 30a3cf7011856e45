package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// ReportHandler serves the aggregated reporting endpoints.
type ReportHandler struct {
	service   ports.ReportService
	validator *RequestValidator
}

func NewReportHandler(service ports.ReportService, validator *RequestValidator) *ReportHandler {
	return &ReportHandler{service: service, validator: validator}
}

func (h *ReportHandler) filters(c echo.Context) (ports.ReportFilters, error) {
	var query reportFiltersQuery
	if err := h.validator.BindQuery(c, &query); err != nil {
		return ports.ReportFilters{}, err
	}

	var status *domain.CaseStatus
	if query.Status != nil {
		s := domain.CaseStatus(*query.Status)
		status = &s
	}

	return ports.ReportFilters{
		Status:                status,
		InitialRegisteredDate: query.InitialRegisteredDate,
		FinalRegisteredDate:   query.FinalRegisteredDate,
		TechnicianID:          query.TechnicianID,
		DaysBack:              query.DaysBack,
		Top:                   query.Top,
	}, nil
}

// DashboardOverview returns case-file totals broken down by status and recency.
//
// @Summary      Dashboard overview
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewData
// @Router       /reports/overview [get]
func (h *ReportHandler) DashboardOverview(c echo.Context) error {
	filters, err := h.filters(c)
	if err != nil {
		return err
	}

	overview, err := h.service.DashboardOverview(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return respondSuccess(c, http.StatusOK,
		overviewData{Overview: overview}, "Dashboard overview retrieved successfully")
}

// CaseStatusByDay returns per-day case-file counts grouped by status.
func (h *ReportHandler) CaseStatusByDay(c echo.Context) error {
	filters, err := h.filters(c)
	if err != nil {
		return err
	}

	rows, err := h.service.CaseStatusByDay(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	if rows == nil {
		rows = []domain.CaseStatusByDayRow{}
	}
	return respondSuccess(c, http.StatusOK,
		caseStatusByDayData{Rows: rows}, "Case status by day retrieved successfully")
}

// TechnicianActivity returns workload figures per technician.
func (h *ReportHandler) TechnicianActivity(c echo.Context) error {
	filters, err := h.filters(c)
	if err != nil {
		return err
	}

	rows, err := h.service.TechnicianActivity(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	if rows == nil {
		rows = []domain.TechnicianActivityRow{}
	}
	return respondSuccess(c, http.StatusOK,
		technicianActivityData{Rows: rows}, "Technician activity retrieved successfully")
}

// EvidenceDensity returns evidence spread statistics and the densest cases.
func (h *ReportHandler) EvidenceDensity(c echo.Context) error {
	filters, err := h.filters(c)
	if err != nil {
		return err
	}

	result, err := h.service.EvidenceDensity(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	data := evidenceDensityData{TopCases: []domain.EvidenceDensityTopCase{}}
	if result != nil {
		data.Summary = result.Summary
		if result.TopCases != nil {
			data.TopCases = result.TopCases
		}
	}
	return respondSuccess(c, http.StatusOK, data, "Evidence density retrieved successfully")
}
