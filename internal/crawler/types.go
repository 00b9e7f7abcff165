package crawler

import "time"

// JobDetails is one fully extracted job posting. Title, Company and
// Description are always populated on a successful extraction; Location
// is best-effort and may be empty.
type JobDetails struct {
	JobID       string    `json:"job_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	URL         string    `json:"url"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

// Stage identifies which pipeline step a failure belongs to.
type Stage string

const (
	StageDiscovery   Stage = "discovery"
	StageExtraction  Stage = "extraction"
	StagePersistence Stage = "persistence"
)

// FailedJob records a job that could not be processed.
type FailedJob struct {
	JobID string `json:"job_id"`
	Error string `json:"error"`
	Stage Stage  `json:"stage"`
}

// RunResult aggregates one crawl run: the accepted jobs in discovery
// order and every recorded failure.
type RunResult struct {
	Jobs   []JobDetails
	Failed []FailedJob
}
