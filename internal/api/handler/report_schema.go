package handler

import "github.com/dicri/evidencetrack/internal/core/domain"

// reportFiltersQuery carries every filter a report endpoint may accept.
// Each endpoint reads the subset it understands.
type reportFiltersQuery struct {
	Status                *string `query:"status"                validate:"omitempty,oneof=REGISTERED UNDER_REVIEW APPROVED REJECTED"`
	InitialRegisteredDate *string `query:"initialRegisteredDate" validate:"omitempty,datetime=2006-01-02"`
	FinalRegisteredDate   *string `query:"finalRegisteredDate"   validate:"omitempty,datetime=2006-01-02"`
	TechnicianID          *int64  `query:"technicianId"          validate:"omitempty,gt=0"`
	DaysBack              *int    `query:"daysBack"              validate:"omitempty,min=1,max=365"`
	Top                   *int    `query:"top"                   validate:"omitempty,min=1,max=100"`
}

type overviewData struct {
	Overview *domain.DashboardOverview `json:"overview"`
}

type caseStatusByDayData struct {
	Rows []domain.CaseStatusByDayRow `json:"rows"`
}

type technicianActivityData struct {
	Rows []domain.TechnicianActivityRow `json:"rows"`
}

type evidenceDensityData struct {
	Summary  *domain.EvidenceDensitySummary  `json:"summary"`
	TopCases []domain.EvidenceDensityTopCase `json:"topCases"`
}
