package models

// Record is a single row within a collection. Storage is schemaless: PATCH
// merges arbitrary body fields into a record, and the employments collection
// carries fields we never declared. Every record therefore travels as an open
// map; the structs below document the canonical fields per collection.
type Record map[string]any

// Collection names — the top-level keys of the datastore document.
const (
	Candidates  = "candidates"
	Jobs        = "jobs"
	Employments = "employments"
	Admins      = "admins"
)

// DefaultCollections is the document layout Bootstrap creates on first run.
var DefaultCollections = []string{Candidates, Jobs, Employments, Admins}

// Closed enumerations for the list-endpoint query filters.
var (
	AllowedRoles   = []string{"Tester", "Developer", "Data Scientist"}
	AllowedDomains = []string{"Testing", "Development", "Data Scientist"}
)

// Candidate is addressed publicly by candidateId, which may be a string or a
// number depending on who seeded the record. Field casing follows the wire
// format (Role and Company are capitalized on the wire).
type Candidate struct {
	ID            float64 `json:"id"`
	CandidateID   any     `json:"candidateId"`
	CandidateName string  `json:"candidateName"`
	Role          string  `json:"Role"`
	Company       *string `json:"Company"`
	Available     bool    `json:"available"`
}

// Job is addressed publicly by JobId (capital J on the wire).
type Job struct {
	ID        float64 `json:"id"`
	JobID     any     `json:"JobId"`
	JobName   string  `json:"JobName"`
	Domain    string  `json:"Domain"`
	Company   *string `json:"Company"`
	Available bool    `json:"available"`
}

// Admin records hold the bearer credentials for the employments endpoints.
// The token is returned to the caller exactly once, at registration.
type Admin struct {
	ID          float64 `json:"id"`
	AdminName   string  `json:"adminName"`
	AdminEmail  string  `json:"adminEmail"`
	Token       string  `json:"token"`
	CreatedDate string  `json:"createdDate"`
}
