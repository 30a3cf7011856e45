package ports

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

// ReportFilters is shared by every report query; each query reads the
// subset it understands and ignores the rest.
type ReportFilters struct {
	Status                *domain.CaseStatus
	InitialRegisteredDate *string
	FinalRegisteredDate   *string
	TechnicianID          *int64
	DaysBack              *int
	Top                   *int
}

type ReportRepository interface {
	DashboardOverview(ctx context.Context, filters ReportFilters) (*domain.DashboardOverview, error)
	CaseStatusByDay(ctx context.Context, filters ReportFilters) ([]domain.CaseStatusByDayRow, error)
	TechnicianActivity(ctx context.Context, filters ReportFilters) ([]domain.TechnicianActivityRow, error)
	EvidenceDensity(ctx context.Context, filters ReportFilters) (*domain.EvidenceDensityResult, error)
}

type ReportService interface {
	DashboardOverview(ctx context.Context, filters ReportFilters) (*domain.DashboardOverview, error)
	CaseStatusByDay(ctx context.Context, filters ReportFilters) ([]domain.CaseStatusByDayRow, error)
	TechnicianActivity(ctx context.Context, filters ReportFilters) ([]domain.TechnicianActivityRow, error)
	EvidenceDensity(ctx context.Context, filters ReportFilters) (*domain.EvidenceDensityResult, error)
}
