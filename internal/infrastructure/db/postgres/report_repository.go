package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// ReportRepository runs the dicri reporting stored procedures.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func statusArg(filters ports.ReportFilters) *string {
	if filters.Status == nil {
		return nil
	}
	s := string(*filters.Status)
	return &s
}

func (r *ReportRepository) DashboardOverview(ctx context.Context, filters ports.ReportFilters) (*domain.DashboardOverview, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_report_dashboard_overview($1, $2, $3)",
		statusArg(filters), filters.InitialRegisteredDate, filters.FinalRegisteredDate)

	var overview domain.DashboardOverview
	err := row.Scan(&overview.TotalCaseFiles, &overview.TotalRegistered,
		&overview.TotalUnderReview, &overview.TotalApproved,
		&overview.TotalRejected, &overview.TotalLast7Days,
		&overview.TotalLast30Days)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	return &overview, nil
}

func (r *ReportRepository) CaseStatusByDay(ctx context.Context, filters ports.ReportFilters) ([]domain.CaseStatusByDayRow, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM dicri.sp_report_case_status_by_day($1, $2)",
		statusArg(filters), filters.DaysBack)
	if err != nil {
		return nil, fmt.Errorf("case status by day: %w", err)
	}
	defer rows.Close()

	var result []domain.CaseStatusByDayRow
	for rows.Next() {
		var row domain.CaseStatusByDayRow
		if err := rows.Scan(&row.RegisteredDate, &row.Status,
			&row.TotalCaseFiles); err != nil {
			return nil, fmt.Errorf("case status by day: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("case status by day: %w", err)
	}
	return result, nil
}

func (r *ReportRepository) TechnicianActivity(ctx context.Context, filters ports.ReportFilters) ([]domain.TechnicianActivityRow, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM dicri.sp_report_technician_activity($1, $2, $3)",
		filters.TechnicianID, filters.InitialRegisteredDate, filters.FinalRegisteredDate)
	if err != nil {
		return nil, fmt.Errorf("technician activity: %w", err)
	}
	defer rows.Close()

	var result []domain.TechnicianActivityRow
	for rows.Next() {
		var row domain.TechnicianActivityRow
		if err := rows.Scan(&row.TechnicianID, &row.TechnicianName,
			&row.TotalCaseFiles, &row.TotalEvidenceItems); err != nil {
			return nil, fmt.Errorf("technician activity: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("technician activity: %w", err)
	}
	return result, nil
}

func (r *ReportRepository) EvidenceDensity(ctx context.Context, filters ports.ReportFilters) (*domain.EvidenceDensityResult, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_report_evidence_density_summary()")

	var summary domain.EvidenceDensitySummary
	var totalCases int64
	if err := row.Scan(&summary.AverageEvidencePerCase, &totalCases); err != nil {
		return nil, fmt.Errorf("evidence density summary: %w", err)
	}
	summary.TotalCasesWithEvidence = totalCases

	result := &domain.EvidenceDensityResult{TopCases: []domain.EvidenceDensityTopCase{}}
	if totalCases > 0 {
		result.Summary = &summary
	}

	top := 5
	if filters.Top != nil {
		top = *filters.Top
	}

	rows, err := r.pool.Query(ctx,
		"SELECT * FROM dicri.sp_report_evidence_density_top_cases($1)", top)
	if err != nil {
		return nil, fmt.Errorf("evidence density top cases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc domain.EvidenceDensityTopCase
		if err := rows.Scan(&tc.CaseFileID, &tc.CaseCode, &tc.Status,
			&tc.TechnicianID, &tc.EvidenceCount); err != nil {
			return nil, fmt.Errorf("evidence density top cases: %w", err)
		}
		result.TopCases = append(result.TopCases, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("evidence density top cases: %w", err)
	}
	return result, nil
}
