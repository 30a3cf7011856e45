package domain

import "time"

// EvidenceItem is a physical item collected under a case file.
type EvidenceItem struct {
	EvidenceItemID int64     `json:"evidenceItemId"`
	CaseFileID     int64     `json:"caseFileId"`
	Description    string    `json:"description"`
	Color          *string   `json:"color"`
	Size           *string   `json:"size"`
	Weight         *string   `json:"weight"`
	LocationFound  *string   `json:"locationFound"`
	TechnicianID   int64     `json:"technicianId"`
	CreatedAt      time.Time `json:"createdAt"`
}
