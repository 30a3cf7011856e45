package service

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

func errEvidenceItemNotFound() *domain.APIError {
	return domain.NotFound("Evidence item not found", "EVIDENCE_ITEM_NOT_FOUND")
}

type EvidenceItemService struct {
	repo ports.EvidenceItemRepository
}

func NewEvidenceItemService(repo ports.EvidenceItemRepository) *EvidenceItemService {
	return &EvidenceItemService{repo: repo}
}

func (s *EvidenceItemService) Create(ctx context.Context, input ports.CreateEvidenceItemInput, technicianID int64) (*domain.EvidenceItem, error) {
	return s.repo.Create(ctx, input, technicianID)
}

func (s *EvidenceItemService) GetByID(ctx context.Context, evidenceItemID int64) (*domain.EvidenceItem, error) {
	item, err := s.repo.GetByID(ctx, evidenceItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errEvidenceItemNotFound()
	}
	return item, nil
}

func (s *EvidenceItemService) List(ctx context.Context, filters ports.ListEvidenceItemsInput) ([]domain.EvidenceItem, error) {
	return s.repo.List(ctx, filters)
}

// Update overlays supplied fields onto the stored item and persists the
// merge, mirroring the case-file update semantics.
func (s *EvidenceItemService) Update(ctx context.Context, evidenceItemID int64, input ports.UpdateEvidenceItemInput) (*domain.EvidenceItem, error) {
	existing, err := s.repo.GetByID(ctx, evidenceItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errEvidenceItemNotFound()
	}

	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Color != nil {
		existing.Color = input.Color
	}
	if input.Size != nil {
		existing.Size = input.Size
	}
	if input.Weight != nil {
		existing.Weight = input.Weight
	}
	if input.LocationFound != nil {
		existing.LocationFound = input.LocationFound
	}

	return s.repo.Update(ctx, evidenceItemID,
		existing.Description, existing.Color, existing.Size, existing.Weight, existing.LocationFound)
}

func (s *EvidenceItemService) Delete(ctx context.Context, evidenceItemID int64) error {
	existing, err := s.repo.GetByID(ctx, evidenceItemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errEvidenceItemNotFound()
	}
	return s.repo.Delete(ctx, evidenceItemID)
}

func (s *EvidenceItemService) CountByCaseFile(ctx context.Context, caseFileID int64) (int64, error) {
	return s.repo.CountByCaseFile(ctx, caseFileID)
}
