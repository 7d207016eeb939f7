package dtos

// CreateCandidateRequest is the body of POST /candidates.
// candidateId may arrive as a string or a number, so it stays untyped.
type CreateCandidateRequest struct {
	CandidateID   any     `json:"candidateId" binding:"required"`
	CandidateName string  `json:"candidateName" binding:"required"`
	Role          string  `json:"Role" binding:"required"`
	Company       *string `json:"Company"`
	Available     *bool   `json:"available"` // defaults to true when omitted
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	JobID     any     `json:"JobId" binding:"required"`
	JobName   string  `json:"JobName" binding:"required"`
	Domain    string  `json:"Domain" binding:"required"`
	Company   *string `json:"Company"`
	Available *bool   `json:"available"` // defaults to false when omitted
}

// RegisterAdminRequest is the body of POST /api-admin.
// adminName is recorded but not required.
type RegisterAdminRequest struct {
	AdminName  string `json:"adminName"`
	AdminEmail string `json:"adminEmail" binding:"required"`
}
