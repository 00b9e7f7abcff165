package crawler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go-linkedin-jobhunter/internal/browser"
	"go-linkedin-jobhunter/internal/config"
	"go-linkedin-jobhunter/internal/retry"
)

// Extractor fetches the detail view of a single job and reads its
// fields. Title, company and description are required: a record missing
// any of them would corrupt filtering downstream, so the whole call
// fails instead. Location is best-effort.
type Extractor struct {
	cfg    *config.Config
	logger *log.Logger
}

func NewExtractor(cfg *config.Config, logger *log.Logger) *Extractor {
	return &Extractor{cfg: cfg, logger: logger}
}

func (e *Extractor) Extract(ctx context.Context, page browser.Page, jobID string) (*JobDetails, error) {
	jobURL := fmt.Sprintf("%s/?currentJobId=%s", jobsSearchURL, jobID)

	err := retry.Do(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, func() error {
		if err := page.Navigate(jobURL); err != nil {
			return err
		}
		return page.WaitVisible(selJobTitle, e.cfg.Waits.Medium)
	})
	if err != nil {
		return nil, &ExtractionError{JobID: jobID, Err: fmt.Errorf("job details did not load: %w", err)}
	}

	title, err := e.requiredText(page, selJobTitle, "title")
	if err != nil {
		return nil, &ExtractionError{JobID: jobID, Err: err}
	}
	company, err := e.requiredText(page, selCompanyName, "company")
	if err != nil {
		return nil, &ExtractionError{JobID: jobID, Err: err}
	}
	description, err := e.requiredText(page, selDescription, "description")
	if err != nil {
		return nil, &ExtractionError{JobID: jobID, Err: err}
	}

	//location lives in the primary description line, before the first "·"
	location := ""
	if el, err := page.Find(selLocation); err == nil {
		if text, err := el.Text(); err == nil {
			location = strings.TrimSpace(strings.Split(text, "·")[0])
		}
	}

	return &JobDetails{
		JobID:       jobID,
		Title:       title,
		Company:     company,
		Description: description,
		Location:    location,
		URL:         jobURL,
		RetrievedAt: time.Now().UTC(),
	}, nil
}

func (e *Extractor) requiredText(page browser.Page, selector, field string) (string, error) {
	el, err := page.Find(selector)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: empty", field)
	}
	return text, nil
}
