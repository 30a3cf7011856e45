package service

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

func errCaseFileNotFound() *domain.APIError {
	return domain.NotFound("Case file not found", "CASE_FILE_NOT_FOUND")
}

// CaseFileService implements case-file operations over the repository.
type CaseFileService struct {
	repo ports.CaseFileRepository
}

func NewCaseFileService(repo ports.CaseFileRepository) *CaseFileService {
	return &CaseFileService{repo: repo}
}

func (s *CaseFileService) Create(ctx context.Context, input ports.CreateCaseFileInput, technicianID int64) (*domain.CaseFile, error) {
	return s.repo.Create(ctx, input.CaseCode, technicianID, input.Description)
}

func (s *CaseFileService) GetByID(ctx context.Context, caseFileID int64) (*domain.CaseFile, error) {
	caseFile, err := s.repo.GetByID(ctx, caseFileID)
	if err != nil {
		return nil, err
	}
	if caseFile == nil {
		return nil, errCaseFileNotFound()
	}
	return caseFile, nil
}

func (s *CaseFileService) List(ctx context.Context, filters ports.ListCaseFilesInput) ([]domain.CaseFile, error) {
	return s.repo.List(ctx, filters)
}

// Update fetches the stored case file, overlays the supplied fields, and
// persists the merge. The rejection reason is only kept while the resulting
// status is REJECTED.
func (s *CaseFileService) Update(ctx context.Context, caseFileID int64, input ports.UpdateCaseFileInput) (*domain.CaseFile, error) {
	existing, err := s.repo.GetByID(ctx, caseFileID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errCaseFileNotFound()
	}

	if input.Status != nil {
		existing.Status = *input.Status
	}
	if input.Description != nil {
		existing.Description = input.Description
	}
	if input.RejectionReason != nil {
		existing.RejectionReason = input.RejectionReason
	}
	if input.TechnicianID != nil {
		existing.TechnicianID = *input.TechnicianID
	}

	rejectionReason := existing.RejectionReason
	if existing.Status != domain.CaseStatusRejected {
		rejectionReason = nil
	}

	return s.repo.Update(ctx, caseFileID, existing.Description, existing.Status, rejectionReason)
}

func (s *CaseFileService) Delete(ctx context.Context, caseFileID int64) error {
	existing, err := s.repo.GetByID(ctx, caseFileID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errCaseFileNotFound()
	}
	return s.repo.Delete(ctx, caseFileID)
}

func (s *CaseFileService) TotalCount(ctx context.Context) (int64, error) {
	return s.repo.TotalCount(ctx)
}
