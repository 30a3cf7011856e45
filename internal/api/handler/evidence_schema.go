package handler

import "github.com/dicri/evidencetrack/internal/core/domain"

type createEvidenceItemRequest struct {
	CaseFileID    int64   `json:"caseFileId"    validate:"required,gt=0"`
	Description   string  `json:"description"   validate:"required,min=3,max=500"`
	Color         *string `json:"color"         validate:"omitempty,max=50"`
	Size          *string `json:"size"          validate:"omitempty,max=50"`
	Weight        *string `json:"weight"        validate:"omitempty,max=50"`
	LocationFound *string `json:"locationFound" validate:"omitempty,max=200"`
}

type updateEvidenceItemRequest struct {
	Description   *string `json:"description"   validate:"omitempty,min=3,max=500"`
	Color         *string `json:"color"         validate:"omitempty,max=50"`
	Size          *string `json:"size"          validate:"omitempty,max=50"`
	Weight        *string `json:"weight"        validate:"omitempty,max=50"`
	LocationFound *string `json:"locationFound" validate:"omitempty,max=200"`
}

type evidenceItemIDParams struct {
	EvidenceItemID int64 `param:"evidenceItemId" validate:"required,gt=0"`
}

type listEvidenceItemsQuery struct {
	CaseFileID int64 `query:"caseFileId" validate:"required,gt=0"`
	Offset     *int  `query:"offset"     validate:"omitempty,min=0"`
	Limit      *int  `query:"limit"      validate:"omitempty,min=1"`
}

type countEvidenceItemsQuery struct {
	CaseFileID int64 `query:"caseFileId" validate:"required,gt=0"`
}

type evidenceItemData struct {
	EvidenceItem *domain.EvidenceItem `json:"evidenceItem"`
}

type evidenceItemListData struct {
	EvidenceItems []domain.EvidenceItem `json:"evidenceItems"`
}
