package ports

import (
	"context"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

type CreateEvidenceItemInput struct {
	CaseFileID    int64
	Description   string
	Color         *string
	Size          *string
	Weight        *string
	LocationFound *string
}

type UpdateEvidenceItemInput struct {
	Description   *string
	Color         *string
	Size          *string
	Weight        *string
	LocationFound *string
}

type ListEvidenceItemsInput struct {
	CaseFileID int64
	Offset     *int
	Limit      *int
}

type EvidenceItemRepository interface {
	Create(ctx context.Context, input CreateEvidenceItemInput, technicianID int64) (*domain.EvidenceItem, error)
	GetByID(ctx context.Context, evidenceItemID int64) (*domain.EvidenceItem, error)
	List(ctx context.Context, filters ListEvidenceItemsInput) ([]domain.EvidenceItem, error)
	Update(ctx context.Context, evidenceItemID int64, description string, color, size, weight, locationFound *string) (*domain.EvidenceItem, error)
	Delete(ctx context.Context, evidenceItemID int64) error
	CountByCaseFile(ctx context.Context, caseFileID int64) (int64, error)
}

type EvidenceItemService interface {
	Create(ctx context.Context, input CreateEvidenceItemInput, technicianID int64) (*domain.EvidenceItem, error)
	GetByID(ctx context.Context, evidenceItemID int64) (*domain.EvidenceItem, error)
	List(ctx context.Context, filters ListEvidenceItemsInput) ([]domain.EvidenceItem, error)
	Update(ctx context.Context, evidenceItemID int64, input UpdateEvidenceItemInput) (*domain.EvidenceItem, error)
	Delete(ctx context.Context, evidenceItemID int64) error
	CountByCaseFile(ctx context.Context, caseFileID int64) (int64, error)
}
