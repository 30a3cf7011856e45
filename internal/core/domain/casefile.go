package domain

import "time"

// CaseStatus represents the review state of a case file.
type CaseStatus string

const (
	CaseStatusRegistered  CaseStatus = "REGISTERED"
	CaseStatusUnderReview CaseStatus = "UNDER_REVIEW"
	CaseStatusApproved    CaseStatus = "APPROVED"
	CaseStatusRejected    CaseStatus = "REJECTED"
)

// CaseStatuses lists every valid status, in lifecycle order.
var CaseStatuses = []CaseStatus{
	CaseStatusRegistered,
	CaseStatusUnderReview,
	CaseStatusApproved,
	CaseStatusRejected,
}

// IsValid reports whether s is one of the known case statuses.
func (s CaseStatus) IsValid() bool {
	for _, known := range CaseStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CaseFile is the aggregate a technician registers for an investigation.
// RejectionReason is only meaningful while Status is REJECTED.
type CaseFile struct {
	CaseFileID      int64      `json:"caseFileId"`
	CaseCode        string     `json:"caseCode"`
	Description     *string    `json:"description,omitempty"`
	RegisteredAt    time.Time  `json:"registeredAt"`
	Status          CaseStatus `json:"status"`
	RejectionReason *string    `json:"rejectionReason"`
	TechnicianID    int64      `json:"technicianId"`
}
