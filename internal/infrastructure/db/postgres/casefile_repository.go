package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

// CaseFileRepository persists case files through the dicri stored procedures.
type CaseFileRepository struct {
	pool *pgxpool.Pool
}

func NewCaseFileRepository(pool *pgxpool.Pool) *CaseFileRepository {
	return &CaseFileRepository{pool: pool}
}

func scanCaseFile(row pgx.Row) (*domain.CaseFile, error) {
	var cf domain.CaseFile
	err := row.Scan(&cf.CaseFileID, &cf.CaseCode, &cf.Description,
		&cf.RegisteredAt, &cf.Status, &cf.RejectionReason, &cf.TechnicianID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

func (r *CaseFileRepository) Create(ctx context.Context, caseCode string, technicianID int64, description *string) (*domain.CaseFile, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_case_file_create($1, $2, $3)",
		caseCode, technicianID, description)

	cf, err := scanCaseFile(row)
	if err != nil {
		return nil, fmt.Errorf("create case file: %w", err)
	}
	return cf, nil
}

func (r *CaseFileRepository) GetByID(ctx context.Context, caseFileID int64) (*domain.CaseFile, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_case_file_get_by_id($1)", caseFileID)

	cf, err := scanCaseFile(row)
	if err != nil {
		return nil, fmt.Errorf("get case file: %w", err)
	}
	return cf, nil
}

func (r *CaseFileRepository) List(ctx context.Context, filters ports.ListCaseFilesInput) ([]domain.CaseFile, error) {
	offset, limit := pagination(filters.Offset, filters.Limit)

	var status *string
	if filters.Status != nil {
		s := string(*filters.Status)
		status = &s
	}

	rows, err := r.pool.Query(ctx,
		"SELECT * FROM dicri.sp_case_file_list($1, $2, $3, $4, $5)",
		status, filters.InitialRegisteredDate, filters.FinalRegisteredDate,
		offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list case files: %w", err)
	}
	defer rows.Close()

	var caseFiles []domain.CaseFile
	for rows.Next() {
		var cf domain.CaseFile
		if err := rows.Scan(&cf.CaseFileID, &cf.CaseCode, &cf.Description,
			&cf.RegisteredAt, &cf.Status, &cf.RejectionReason, &cf.TechnicianID); err != nil {
			return nil, fmt.Errorf("list case files: %w", err)
		}
		caseFiles = append(caseFiles, cf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list case files: %w", err)
	}
	return caseFiles, nil
}

func (r *CaseFileRepository) Update(ctx context.Context, caseFileID int64, description *string, status domain.CaseStatus, rejectionReason *string) (*domain.CaseFile, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_case_file_update($1, $2, $3, $4)",
		caseFileID, description, string(status), rejectionReason)

	cf, err := scanCaseFile(row)
	if err != nil {
		return nil, fmt.Errorf("update case file: %w", err)
	}
	return cf, nil
}

func (r *CaseFileRepository) Delete(ctx context.Context, caseFileID int64) error {
	if _, err := r.pool.Exec(ctx,
		"SELECT dicri.sp_case_file_delete($1)", caseFileID); err != nil {
		return fmt.Errorf("delete case file: %w", err)
	}
	return nil
}

func (r *CaseFileRepository) TotalCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		"SELECT * FROM dicri.sp_case_file_total_count()").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count case files: %w", err)
	}
	return total, nil
}
