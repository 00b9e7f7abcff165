// Package export writes the run result to a JSON artifact, overwritten
// wholesale each run. Its success is independent of the durable store.
package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-linkedin-jobhunter/internal/crawler"
)

type stats struct {
	TotalJobs  int `json:"total_jobs"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type document struct {
	SuccessfulJobs []crawler.JobDetails `json:"successful_jobs"`
	FailedJobs     []crawler.FailedJob  `json:"failed_jobs"`
	Stats          stats                `json:"stats"`
}

type Writer struct {
	path   string
	logger *log.Logger
}

func NewWriter(path string, logger *log.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

func (w *Writer) Export(result crawler.RunResult) error {
	doc := document{
		SuccessfulJobs: result.Jobs,
		FailedJobs:     result.Failed,
		Stats: stats{
			TotalJobs:  len(result.Jobs) + len(result.Failed),
			Successful: len(result.Jobs),
			Failed:     len(result.Failed),
		},
	}
	//render empty lists as [], not null
	if doc.SuccessfulJobs == nil {
		doc.SuccessfulJobs = []crawler.JobDetails{}
	}
	if doc.FailedJobs == nil {
		doc.FailedJobs = []crawler.FailedJob{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	w.logger.Printf("📁 Saved %d successful and %d failed jobs to %s",
		doc.Stats.Successful, doc.Stats.Failed, w.path)
	return nil
}
