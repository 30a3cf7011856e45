package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

type createCaseFileRequest struct {
	CaseCode    string  `json:"caseCode"    validate:"required,min=3,max=50"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type updateCaseFileRequest struct {
	Status          *string `json:"status"          validate:"omitempty,oneof=REGISTERED UNDER_REVIEW APPROVED REJECTED"`
	Description     *string `json:"description"     validate:"omitempty,max=500"`
	RejectionReason *string `json:"rejectionReason" validate:"omitempty,max=500"`
	TechnicianID    *int64  `json:"technicianId"    validate:"omitempty,gt=0"`
}

// updateCaseFileRules is the cross-field constraint on case-file updates:
// moving to REJECTED requires a rejection reason. The failure attaches to
// the dependent field, after all per-field checks.
func updateCaseFileRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(updateCaseFileRequest)
	if req.Status != nil && *req.Status == string(domain.CaseStatusRejected) &&
		(req.RejectionReason == nil || *req.RejectionReason == "") {
		sl.ReportError(req.RejectionReason, "rejectionReason", "RejectionReason", "required_if_rejected", "")
	}
}

type caseFileIDParams struct {
	CaseFileID int64 `param:"caseFileId" validate:"required,gt=0"`
}

type listCaseFilesQuery struct {
	Status                *string `query:"status"                validate:"omitempty,oneof=REGISTERED UNDER_REVIEW APPROVED REJECTED"`
	InitialRegisteredDate *string `query:"initialRegisteredDate"`
	FinalRegisteredDate   *string `query:"finalRegisteredDate"`
	Offset                *int    `query:"offset"                validate:"omitempty,min=0"`
	Limit                 *int    `query:"limit"                 validate:"omitempty,min=1"`
}

type caseFileData struct {
	CaseFile *domain.CaseFile `json:"caseFile"`
}

type caseFileListData struct {
	CaseFiles []domain.CaseFile `json:"caseFiles"`
}

type totalRowsData struct {
	TotalRows int64 `json:"totalRows"`
}
