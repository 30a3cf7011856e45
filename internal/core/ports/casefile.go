package ports

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

type CreateCaseFileInput struct {
	CaseCode    string
	Description *string
}

// UpdateCaseFileInput carries only the fields the caller supplied; nil means
// "keep the stored value".
type UpdateCaseFileInput struct {
	Status          *domain.CaseStatus
	Description     *string
	RejectionReason *string
	TechnicianID    *int64
}

type ListCaseFilesInput struct {
	Status                *domain.CaseStatus
	InitialRegisteredDate *string
	FinalRegisteredDate   *string
	Offset                *int
	Limit                 *int
}

// CaseFileRepository is the persistence boundary for case files. GetByID
// returns (nil, nil) when no row exists.
type CaseFileRepository interface {
	Create(ctx context.Context, caseCode string, technicianID int64, description *string) (*domain.CaseFile, error)
	GetByID(ctx context.Context, caseFileID int64) (*domain.CaseFile, error)
	List(ctx context.Context, filters ListCaseFilesInput) ([]domain.CaseFile, error)
	Update(ctx context.Context, caseFileID int64, description *string, status domain.CaseStatus, rejectionReason *string) (*domain.CaseFile, error)
	Delete(ctx context.Context, caseFileID int64) error
	TotalCount(ctx context.Context) (int64, error)
}

type CaseFileService interface {
	Create(ctx context.Context, input CreateCaseFileInput, technicianID int64) (*domain.CaseFile, error)
	GetByID(ctx context.Context, caseFileID int64) (*domain.CaseFile, error)
	List(ctx context.Context, filters ListCaseFilesInput) ([]domain.CaseFile, error)
	Update(ctx context.Context, caseFileID int64, input UpdateCaseFileInput) (*domain.CaseFile, error)
	Delete(ctx context.Context, caseFileID int64) error
	TotalCount(ctx context.Context) (int64, error)
}
