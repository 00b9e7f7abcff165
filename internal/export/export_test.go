package export

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-jobhunter/internal/crawler"
)

func TestExportWritesFullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	w := NewWriter(path, log.New(io.Discard, "", 0))

	result := crawler.RunResult{
		Jobs: []crawler.JobDetails{
			{JobID: "1", Title: "Engineer", Company: "Acme", Description: "go"},
		},
		Failed: []crawler.FailedJob{
			{JobID: "2", Error: "boom", Stage: crawler.StageExtraction},
		},
	}
	require.NoError(t, w.Export(result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		SuccessfulJobs []crawler.JobDetails `json:"successful_jobs"`
		FailedJobs     []crawler.FailedJob  `json:"failed_jobs"`
		Stats          struct {
			TotalJobs  int `json:"total_jobs"`
			Successful int `json:"successful"`
			Failed     int `json:"failed"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Len(t, doc.SuccessfulJobs, 1)
	assert.Equal(t, "Engineer", doc.SuccessfulJobs[0].Title)
	assert.Len(t, doc.FailedJobs, 1)
	assert.Equal(t, crawler.StageExtraction, doc.FailedJobs[0].Stage)
	assert.Equal(t, 2, doc.Stats.TotalJobs)
	assert.Equal(t, 1, doc.Stats.Successful)
	assert.Equal(t, 1, doc.Stats.Failed)
}

func TestExportOverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	w := NewWriter(path, log.New(io.Discard, "", 0))

	require.NoError(t, w.Export(crawler.RunResult{
		Jobs: []crawler.JobDetails{{JobID: "1"}, {JobID: "2"}},
	}))
	require.NoError(t, w.Export(crawler.RunResult{
		Jobs: []crawler.JobDetails{{JobID: "3"}},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	var jobs []crawler.JobDetails
	require.NoError(t, json.Unmarshal(doc["successful_jobs"], &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "3", jobs[0].JobID)
}

func TestExportEmptyRunRendersEmptyLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	w := NewWriter(path, log.New(io.Discard, "", 0))

	require.NoError(t, w.Export(crawler.RunResult{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"successful_jobs": []`)
	assert.Contains(t, string(data), `"failed_jobs": []`)
}
