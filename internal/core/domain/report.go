package domain

// DashboardOverview aggregates case-file totals for the dashboard report.
type DashboardOverview struct {
	TotalCaseFiles   int64 `json:"totalCaseFiles"`
	TotalRegistered  int64 `json:"totalRegistered"`
	TotalUnderReview int64 `json:"totalUnderReview"`
	TotalApproved    int64 `json:"totalApproved"`
	TotalRejected    int64 `json:"totalRejected"`
	TotalLast7Days   int64 `json:"totalLast7Days"`
	TotalLast30Days  int64 `json:"totalLast30Days"`
}

// CaseStatusByDayRow is one (day, status) bucket of registered case files.
type CaseStatusByDayRow struct {
	RegisteredDate string     `json:"registeredDate"`
	Status         CaseStatus `json:"status"`
	TotalCaseFiles int64      `json:"totalCaseFiles"`
}

// TechnicianActivityRow summarises one technician's workload.
type TechnicianActivityRow struct {
	TechnicianID       int64  `json:"technicianId"`
	TechnicianName     string `json:"technicianName"`
	TotalCaseFiles     int64  `json:"totalCaseFiles"`
	TotalEvidenceItems int64  `json:"totalEvidenceItems"`
}

// EvidenceDensitySummary describes how evidence spreads across cases.
type EvidenceDensitySummary struct {
	AverageEvidencePerCase float64 `json:"averageEvidencePerCase"`
	TotalCasesWithEvidence int64   `json:"totalCasesWithEvidence"`
}

// EvidenceDensityTopCase is one of the cases with the most evidence items.
type EvidenceDensityTopCase struct {
	CaseFileID    int64      `json:"caseFileId"`
	CaseCode      string     `json:"caseCode"`
	Status        CaseStatus `json:"status"`
	TechnicianID  int64      `json:"technicianId"`
	EvidenceCount int64      `json:"evidenceCount"`
}

// EvidenceDensityResult pairs the summary with the top cases. Summary is nil
// when the store holds no evidence at all.
type EvidenceDensityResult struct {
	Summary  *EvidenceDensitySummary  `json:"summary"`
	TopCases []EvidenceDensityTopCase `json:"topCases"`
}
