package service

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// ReportService forwards report queries to the repository; all aggregation
// happens in the stored procedures.
type ReportService struct {
	repo ports.ReportRepository
}

func NewReportService(repo ports.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) DashboardOverview(ctx context.Context, filters ports.ReportFilters) (*domain.DashboardOverview, error) {
	return s.repo.DashboardOverview(ctx, filters)
}

func (s *ReportService) CaseStatusByDay(ctx context.Context, filters ports.ReportFilters) ([]domain.CaseStatusByDayRow, error) {
	return s.repo.CaseStatusByDay(ctx, filters)
}

func (s *ReportService) TechnicianActivity(ctx context.Context, filters ports.ReportFilters) ([]domain.TechnicianActivityRow, error) {
	return s.repo.TechnicianActivity(ctx, filters)
}

func (s *ReportService) EvidenceDensity(ctx context.Context, filters ports.ReportFilters) (*domain.EvidenceDensityResult, error) {
	return s.repo.EvidenceDensity(ctx, filters)
}
